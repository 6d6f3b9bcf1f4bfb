package models

import (
	"bytes"
	"encoding/json"
)

// KeyField is one natural-key column echoed back by a delete.
type KeyField struct {
	Name  string
	Value any
}

// Key builds a KeyField.
func Key(name string, value any) KeyField {
	return KeyField{Name: name, Value: value}
}

// DeleteResult reports the outcome of a delete. A row blocked by a foreign
// key is reported with Deleted=false and a message, never as an error.
//
// It serialises as the key fields in order followed by "eliminado" and
// "msg_error", e.g. {"id_producto":7,"eliminado":false,"msg_error":"..."}.
type DeleteResult struct {
	Keys         []KeyField
	Deleted      bool
	ErrorMessage *string
}

// Deleted builds a successful result.
func Deleted(keys ...KeyField) *DeleteResult {
	return &DeleteResult{Keys: keys, Deleted: true}
}

// NotDeleted builds a refused result carrying msg.
func NotDeleted(msg string, keys ...KeyField) *DeleteResult {
	return &DeleteResult{Keys: keys, ErrorMessage: &msg}
}

// MarshalJSON implements json.Marshaler.
func (r DeleteResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(name string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	for _, k := range r.Keys {
		if err := write(k.Name, k.Value); err != nil {
			return nil, err
		}
	}
	if err := write("eliminado", r.Deleted); err != nil {
		return nil, err
	}
	if err := write("msg_error", r.ErrorMessage); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
