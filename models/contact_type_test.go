package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContactType(t *testing.T) {
	cases := []struct {
		in   string
		want ContactType
		ok   bool
	}{
		{"person", ContactTypePerson, true},
		{"Commercial", ContactTypeCommercial, true},
		{"3", ContactTypeEducational, true},
		{" nonprofit ", ContactTypeNonprofit, true},
		{"5", ContactTypeGovernmental, true},
		{"0", 0, false},
		{"6", 0, false},
		{"257", 0, false},
		{"-1", 0, false},
		{"alien", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseContactType(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestContactTypeClassification(t *testing.T) {
	assert.True(t, ContactTypePerson.IsPerson())
	assert.False(t, ContactTypePerson.IsOrganization())
	for _, ct := range ContactTypes()[1:] {
		assert.True(t, ct.IsOrganization(), ct.Key())
		assert.False(t, ct.IsPerson(), ct.Key())
	}
	assert.False(t, ContactType(9).IsValid())
	assert.Equal(t, "Bilinmeyen", ContactType(9).Label())
	assert.Len(t, ContactTypes(), 5)
}

func TestContactTypeLabels(t *testing.T) {
	want := map[ContactType]string{
		ContactTypePerson:       "Kişi",
		ContactTypeCommercial:   "Ticari İşletme",
		ContactTypeEducational:  "Eğitim Kurumu",
		ContactTypeNonprofit:    "Kâr Amacı Gütmeyen Kuruluş",
		ContactTypeGovernmental: "Kamu Kurumu",
	}
	for ct, label := range want {
		assert.Equal(t, label, ct.Label(), ct.Key())
		assert.Equal(t, label, ct.String(), ct.Key())
	}
}

func TestContactTypeScanValue(t *testing.T) {
	v, err := ContactTypeNonprofit.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	var ct ContactType
	for _, src := range []interface{}{int64(2), int32(2), int16(2), []byte("2"), "2"} {
		require.NoError(t, ct.Scan(src))
		assert.Equal(t, ContactTypeCommercial, ct)
	}
	require.NoError(t, ct.Scan(nil))
	assert.Equal(t, ContactType(0), ct)
	assert.Error(t, ct.Scan(1.5))
	assert.Error(t, ct.Scan("x"))
}
