package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Credential {
	return []Credential{
		{Id: "1", Service: "GitHub", Login: "alice", Password: "p@ss1",
			CreatedAt: time.Date(2026, 10, 17, 9, 0, 0, 123456789, time.UTC)},
		{Id: "2", Service: "GMail", Login: "alice2", Password: "p@ss2",
			CreatedAt: time.Date(2026, 10, 17, 9, 5, 0, 0, time.UTC)},
	}
}

func TestEncode_WritesVersionedEnvelope(t *testing.T) {
	b, err := Encode(sample()[:1])
	require.NoError(t, err)

	assert.JSONEq(t, `{"version":1,"records":[{"id":"1","service":"GitHub","login":"alice",
		"password":"p@ss1","createdAt":"2026-10-17T09:00:00.123456789Z"}]}`, string(b))
}

func TestEncode_NilIsEmptyArray(t *testing.T) {
	b, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"records":[]}`, string(b))
}

func TestEncodeDecode_PreservesOrderAndFields(t *testing.T) {
	in := sample()
	b, err := Encode(in)
	require.NoError(t, err)

	doc, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, FormatVersion, doc.Version)
	assert.Equal(t, in, doc.Records)
}

func TestDecode_LegacyArray(t *testing.T) {
	legacy := `[{"id":"1729155600000","service":"VK","login":"ivan","password":"qwerty",
		"createdAt":"2024-10-17T09:00:00.000Z"}]`

	doc, err := Decode([]byte(legacy))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Version)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "VK", doc.Records[0].Service)
	assert.True(t, doc.Records[0].CreatedAt.Equal(time.Date(2024, 10, 17, 9, 0, 0, 0, time.UTC)))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "   ", common.ErrCorruptData},
		{"not json", "{oops", common.ErrCorruptData},
		{"truncated legacy", `[{"id":"1"`, common.ErrCorruptData},
		{"missing version", `{"records":[]}`, common.ErrCorruptData},
		{"bad timestamp", `{"version":1,"records":[{"id":"1","createdAt":"yesterday"}]}`, common.ErrCorruptData},
		{"empty id", `{"version":1,"records":[{"id":""}]}`, common.ErrCorruptData},
		{"duplicate id", `[{"id":"a"},{"id":"a"}]`, common.ErrCorruptData},
		{"future version", `{"version":2,"records":[]}`, common.ErrUnsupportedVersion},
		{"zero version envelope", `{"version":0,"records":[]}`, common.ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_NullRecordsBecomeEmpty(t *testing.T) {
	doc, err := Decode([]byte(`{"version":1,"records":null}`))
	require.NoError(t, err)
	assert.NotNil(t, doc.Records)
	assert.Empty(t, doc.Records)
}

func TestCredential_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(sample()[1])
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"id", "service", "login", "password", "createdAt"} {
		assert.Contains(t, m, k)
	}
}
