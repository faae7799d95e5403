package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2016-11-08")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2016, time.November, 8), d)

	_, err = ParseDate("11/8/2016")
	assert.Error(t, err)
}

func TestParseSlashDate(t *testing.T) {
	d, err := ParseSlashDate("11/8/2016")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2016, time.November, 8), d)

	// Zero-padded components are accepted too.
	d, err = ParseSlashDate("01/02/2017")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2017, time.January, 2), d)
}

func TestDate_MonthKey(t *testing.T) {
	assert.Equal(t, "2016-11", NewDate(2016, time.November, 8).MonthKey())
	assert.Equal(t, "2017-01", NewDate(2017, time.January, 31).MonthKey())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type doc struct {
		OrderDate Date `json:"orderDate"`
	}

	raw, err := json.Marshal(doc{OrderDate: NewDate(2016, time.June, 12)})
	require.NoError(t, err)
	assert.Equal(t, `{"orderDate":"2016-06-12"}`, string(raw))

	var decoded doc
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, NewDate(2016, time.June, 12), decoded.OrderDate)
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-date"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`20160612`)))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2016, time.June, 12, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, NewDate(2016, time.June, 12), d)

	// Some drivers return DATE columns as text with a time suffix.
	require.NoError(t, d.Scan("2017-12-30 00:00:00"))
	assert.Equal(t, NewDate(2017, time.December, 30), d)

	require.NoError(t, d.Scan([]byte("2015-01-03")))
	assert.Equal(t, NewDate(2015, time.January, 3), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(12345))
}
