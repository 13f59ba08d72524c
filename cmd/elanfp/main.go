// Command elanfp drives an ELAN 04F3:0C4C match-on-chip fingerprint reader.
//
// Every subcommand maps to one sensor workflow: enroll and verify fingers,
// inspect or delete template slots, capture a raw image, or poke the
// protocol with raw frames.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vogtinator/go-elanfp/imaging"
	"github.com/vogtinator/go-elanfp/protocol"
	"github.com/vogtinator/go-elanfp/sensor"
	"github.com/vogtinator/go-elanfp/usb"
)

var (
	verbose   bool
	userData  string
	rawEpIn   int
	serveAddr string
)

// withReader opens the reader, runs fn and cleans up. On failure the abort
// command is written best-effort to calm the sensor before the error
// propagates, mirroring what the Windows driver does.
func withReader(fn func(dev *usb.Device, r *sensor.Reader) error) error {
	dev, err := usb.Open()
	if err != nil {
		return err
	}
	defer dev.Close()

	r := sensor.New(dev, sensor.WithPromptFunc(func(msg string) {
		fmt.Println(msg)
	}))
	if err := fn(dev, r); err != nil {
		log.Info("aborting")
		r.Abort()
		return err
	}
	return nil
}

func parseSlot(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid finger id %q", arg)
	}
	return slot, nil
}

var rootCmd = &cobra.Command{
	Use:           "elanfp",
	Short:         "Drive an ELAN 04F3:0C4C fingerprint reader",
	Long:          `elanfp talks the reverse-engineered protocol of the ELAN 04F3:0C4C match-on-chip fingerprint reader.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset sensor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				return r.Reset()
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Verify finger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				slot, err := r.Verify()
				if err != nil {
					return err
				}
				fmt.Printf("Recognized finger: %d\n", slot)
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "fw_ver",
		Short: "Get firmware version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				major, minor, err := r.FirmwareVersion()
				if err != nil {
					return err
				}
				fmt.Printf("Version: %d.%d\n", major, minor)
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "finger_info <id>",
		Short: "Get finger info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				record, err := r.FingerInfo(slot)
				if err != nil {
					return err
				}
				fmt.Printf("Finger info:\n%s", hex.Dump(record))
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "finger_info_all",
		Short: "Get info for all finger slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				for slot := 0; slot < protocol.MaxFingers; slot++ {
					record, err := r.FingerInfo(slot)
					if err != nil {
						return err
					}
					fmt.Printf("Finger info %d:\n%s", slot, hex.Dump(record))
				}
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "enrolled_count",
		Short: "Get number of fingers currently enrolled",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				n, err := r.EnrolledCount()
				if err != nil {
					return err
				}
				fmt.Printf("Enrolled fingers: %d\n", n)
				return nil
			})
		},
	})

	enroll := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a new finger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				slot, err := r.Enroll([]byte(userData))
				if err != nil {
					return err
				}
				fmt.Printf("Enrolled finger %d\n", slot)
				return nil
			})
		},
	}
	enroll.Flags().StringVarP(&userData, "user", "u", "", "User data stored with the template")
	enroll.MarkFlagRequired("user")
	rootCmd.AddCommand(enroll)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete finger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				return r.DeleteByID(slot)
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete_all",
		Short: "Delete all enrolled fingers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				return r.DeleteAll()
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "capture <png>",
		Short: "Capture image into a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				frame, err := r.Capture()
				if err != nil {
					return err
				}
				img, err := imaging.Normalize(frame)
				if err != nil {
					return err
				}
				if err := imaging.WritePNG(args[0], img); err != nil {
					return err
				}
				fmt.Printf("Captured %dx%d image to %s\n", frame.Width, frame.Height, args[0])
				return nil
			})
		},
	})

	raw := &cobra.Command{
		Use:   "raw <hex>...",
		Short: "Send a raw command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := make([]byte, 0, len(args))
			for _, arg := range args {
				b, err := strconv.ParseUint(arg, 16, 8)
				if err != nil {
					return fmt.Errorf("invalid hex byte %q", arg)
				}
				payload = append(payload, byte(b))
			}
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				fmt.Printf("Sending [%d]:\n%s\n", len(payload), hex.Dump(payload))
				if err := dev.Write(1, payload, 5*time.Second); err != nil {
					return err
				}
				resp, err := dev.Read(rawEpIn, 1000, 5*time.Second)
				if err != nil {
					return err
				}
				fmt.Printf("Received [%d]:\n%s", len(resp), hex.Dump(resp))
				return nil
			})
		},
	}
	raw.Flags().IntVarP(&rawEpIn, "ep-in", "e", 0, "Input endpoint for the reply")
	raw.MarkFlagRequired("ep-in")
	rootCmd.AddCommand(raw)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Expose the sensor over a local HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withReader(func(dev *usb.Device, r *sensor.Reader) error {
				return runServer(serveAddr, r)
			})
		},
	}
	serve.Flags().StringVarP(&serveAddr, "addr", "a", "localhost:8137", "Listen address")
	rootCmd.AddCommand(serve)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
