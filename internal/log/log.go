package log

import (
	"encoding/json"
	"log"
	"time"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Action string         `json:"action,omitempty"`
	UserID int64          `json:"user_id,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level, action string, userID int64, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, UserID: userID, Fields: fields}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(action string, fields map[string]any) { write("info", action, 0, nil, fields) }

// Audit records a store mutation with the acting user, if known.
func Audit(action string, userID int64, fields map[string]any) {
	write("audit", action, userID, nil, fields)
}

func Error(action string, err error, fields map[string]any) {
	write("error", action, 0, err, fields)
}
