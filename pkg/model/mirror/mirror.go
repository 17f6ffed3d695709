package mirror

import (
	"errors"
	"fmt"
	"strconv"
)

// Hash field names of a mirror record.
const (
	FieldBaseUrl  = "baseurl"
	FieldRegion   = "region"
	FieldLocation = "location"
	FieldTier     = "tier"
	FieldEnabled  = "enabled"
	FieldProto    = "proto"
)

// DefaultLocation is reported for records without a location.
const DefaultLocation = "unknown"

type Mirror struct {
	Id        uint64     `json:"id"`
	BaseUrl   string     `json:"baseurl"`
	Region    Region     `json:"region"`
	Location  string     `json:"location"`
	Tier      Tier       `json:"tier"`
	Enabled   bool       `json:"enabled"`
	Protocols []Protocol `json:"protocols"`
}

var ErrMissingField = errors.New("required field is missing")

// FieldError reports the record field a decode failed on.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("mirror field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("mirror field %q: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Decode builds a Mirror from the fields of one hash record. Id is left at
// zero for the caller to fill in from the record's key.
//
// Only a missing or empty baseurl or a non-empty tier that is neither an unsigned
// integer nor "tor" fail the decode. Unknown regions become RegionUnknown,
// unknown protocol tokens are dropped and an unparseable enabled flag reads
// as false.
func Decode(raw map[string]string) (Mirror, error) {
	m := Mirror{
		Region:    RegionUnknown,
		Location:  DefaultLocation,
		Tier:      UnknownTier,
		Protocols: []Protocol{},
	}

	baseUrl := raw[FieldBaseUrl]
	if baseUrl == "" {
		return Mirror{}, &FieldError{Field: FieldBaseUrl, Err: ErrMissingField}
	}
	m.BaseUrl = baseUrl

	if v, ok := raw[FieldRegion]; ok {
		m.Region = ParseRegion(v)
	}

	if v, ok := raw[FieldLocation]; ok {
		m.Location = v
	}

	if v, ok := raw[FieldTier]; ok && v != "" {
		tier, err := ParseTier(v)
		if err != nil {
			return Mirror{}, &FieldError{Field: FieldTier, Value: v, Err: err}
		}
		m.Tier = tier
	}

	if v, ok := raw[FieldEnabled]; ok {
		n, err := strconv.ParseUint(v, 10, 64)
		m.Enabled = err == nil && n != 0
	}

	if v, ok := raw[FieldProto]; ok {
		m.Protocols = ParseProtocols(v)
	}

	return m, nil
}
