package dyadic

import json "github.com/goccy/go-json"

// jsonMarshal and jsonUnmarshal route through goccy/go-json, the
// drop-in encoding/json replacement used throughout this module for
// record serialization (see search.Record).
func jsonMarshal(v interface{}) ([]byte, error)   { return json.Marshal(v) }
func jsonUnmarshal(b []byte, v interface{}) error { return json.Unmarshal(b, v) }
