package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fieldReader разбирает частичное обновление: отличает отсутствующее поле
// (не менять) от null (сбросить nullable-поле).
type fieldReader struct {
	raw map[string]json.RawMessage
	err error
}

func newFieldReader(r *http.Request) (*fieldReader, error) {
	fr := &fieldReader{}
	if err := json.NewDecoder(r.Body).Decode(&fr.raw); err != nil {
		return nil, err
	}
	return fr, nil
}

func readField[T any](fr *fieldReader, key string) *T {
	if fr.err != nil {
		return nil
	}
	raw, ok := fr.raw[key]
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		fr.err = fmt.Errorf("field %q: %w", key, err)
		return nil
	}
	return &v
}

func (fr *fieldReader) str(key string) *string      { return readField[string](fr, key) }
func (fr *fieldReader) i64(key string) *int64       { return readField[int64](fr, key) }
func (fr *fieldReader) nstr(key string) **string    { return readField[*string](fr, key) }
func (fr *fieldReader) nfloat(key string) **float64 { return readField[*float64](fr, key) }
