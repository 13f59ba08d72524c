// Package sensor provides a high-level API for driving the ELAN 04F3:0C4C
// match-on-chip fingerprint reader.
//
// # Overview
//
// A Reader executes the multi-step protocol workflows on top of the command
// table in the protocol package:
//   - Verifying a placed finger against on-chip templates
//   - Enrolling a finger (sampling rounds plus a commit step)
//   - Reading per-slot finger info, with automatic angry-sensor recovery
//   - Deleting one or all enrolled fingers
//   - Capturing a raw image frame
//
// # Basic Usage
//
//	dev, err := usb.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	r := sensor.New(dev)
//	slot, err := r.Verify()
//
// # Hardware Independence
//
// The Reader does not talk USB itself. It drives any Transport, which is
// what the usb package implements for real hardware and what tests replace
// with a mock. Exactly one workflow may be in flight per Reader; the
// protocol has no concept of concurrent requests.
//
// # Blocking and Retries
//
// Workflows that wait for a physical finger placement block until the
// sensor reports one, retrying placement hints indefinitely by default.
// Bound them with WithRetryLimit, and surface "place finger" prompts to the
// operator with WithPromptFunc:
//
//	r := sensor.New(dev,
//	    sensor.WithPromptFunc(func(msg string) { fmt.Println(msg) }),
//	    sensor.WithRetryLimit(100),
//	)
//
// # Error Handling
//
// Sensor status errors surface as *protocol.StatusError. Workflow-fatal
// conditions get their own types: MaxFingersError aborts an enrollment,
// RetryLimitError reports an exhausted retry budget. Transport failures are
// wrapped and always fatal to the running workflow.
package sensor
