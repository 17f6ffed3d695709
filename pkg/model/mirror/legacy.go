package mirror

import (
	"encoding/csv"
	"io"
	"strconv"
)

// LegacyMirror is the reduced shape served to clients of the v0 mirror list.
// BaseUrl carries the full "<protocol>://<baseurl>/" URL.
type LegacyMirror struct {
	Region   Region `json:"region"`
	BaseUrl  string `json:"baseurl"`
	Location string `json:"location"`
	Tier     Tier   `json:"tier"`
	Enabled  bool   `json:"enabled"`
}

func NewLegacyMirror(m Mirror) LegacyMirror {
	proto := DefaultProtocol
	if len(m.Protocols) > 0 {
		proto = m.Protocols[0]
	}
	return LegacyMirror{
		Region:   m.Region,
		BaseUrl:  string(proto) + "://" + m.BaseUrl + "/",
		Location: m.Location,
		Tier:     m.Tier,
		Enabled:  m.Enabled,
	}
}

// Legacy projects the enabled mirrors, keeping their order. Disabled mirrors
// are not part of the legacy list.
func Legacy(mirrors []Mirror) []LegacyMirror {
	legacy := []LegacyMirror{}
	for _, m := range mirrors {
		if !m.Enabled {
			continue
		}
		legacy = append(legacy, NewLegacyMirror(m))
	}
	return legacy
}

func (l LegacyMirror) record() []string {
	return []string{
		l.Region.String(),
		l.BaseUrl,
		l.Location,
		l.Tier.String(),
		strconv.FormatBool(l.Enabled),
	}
}

// WriteLegacyTSV writes one tab separated row per mirror, without a header,
// in the field order of the legacy JSON object.
func WriteLegacyTSV(w io.Writer, mirrors []LegacyMirror) error {
	wtr := csv.NewWriter(w)
	wtr.Comma = '\t'
	for _, m := range mirrors {
		if err := wtr.Write(m.record()); err != nil {
			return err
		}
	}
	wtr.Flush()
	return wtr.Error()
}
