package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vogtinator/go-elanfp/imaging"
	"github.com/vogtinator/go-elanfp/protocol"
	"github.com/vogtinator/go-elanfp/sensor"
)

// server serializes HTTP access to the sensor: the device answers one
// command at a time, so only one workflow may run regardless of how many
// requests arrive.
type server struct {
	mu     sync.Mutex
	reader *sensor.Reader
}

type fingerInfo struct {
	ID       int    `json:"id"`
	Enrolled bool   `json:"enrolled"`
	Record   string `json:"record,omitempty"`
}

func runServer(addr string, reader *sensor.Reader) error {
	s := &server{reader: reader}

	router := mux.NewRouter()
	router.HandleFunc("/version", s.getVersion).Methods("GET")
	router.HandleFunc("/fingers", s.listFingers).Methods("GET")
	router.HandleFunc("/fingers/{id:[0-9]}", s.getFinger).Methods("GET")
	router.HandleFunc("/fingers/{id:[0-9]}", s.deleteFinger).Methods("DELETE")
	router.HandleFunc("/capture.png", s.capture).Methods("GET")

	log.Infof("listening on http://%s", addr)
	return http.ListenAndServe(addr, router)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	e.Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var statusErr *protocol.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == protocol.StatusNotEnrolled {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}

func (s *server) getVersion(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	major, minor, err := s.reader.FirmwareVersion()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, struct {
		Major byte `json:"major"`
		Minor byte `json:"minor"`
	}{major, minor})
}

func (s *server) listFingers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fingers := make([]fingerInfo, 0, protocol.MaxFingers)
	for slot := 0; slot < protocol.MaxFingers; slot++ {
		record, err := s.reader.FingerInfo(slot)
		if err != nil {
			writeError(w, err)
			return
		}
		info := fingerInfo{ID: slot}
		if record[len(record)-1] != protocol.SentinelAngry {
			info.Enrolled = true
			info.Record = hex.EncodeToString(record)
		}
		fingers = append(fingers, info)
	}
	writeJSON(w, fingers)
}

func (s *server) getFinger(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := int(mux.Vars(r)["id"][0] - '0')
	record, err := s.reader.FingerInfo(slot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, fingerInfo{
		ID:       slot,
		Enrolled: record[len(record)-1] != protocol.SentinelAngry,
		Record:   hex.EncodeToString(record),
	})
}

func (s *server) deleteFinger(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := int(mux.Vars(r)["id"][0] - '0')
	if err := s.reader.DeleteByID(slot); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) capture(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame, err := s.reader.Capture()
	if err != nil {
		writeError(w, err)
		return
	}
	img, err := imaging.Normalize(frame)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Warnf("encoding capture: %v", err)
	}
}
