package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Region is the geographic class a mirror is listed under.
type Region int

const (
	RegionUnknown Region = iota
	RegionAfrica
	RegionAntarctica
	RegionAsia
	RegionEurope
	RegionNorthAmerica
	RegionOceania
	RegionSouthAmerica
	RegionDefault
	RegionWorld
)

var regionCodes = map[Region]string{
	RegionUnknown:      "Unknown",
	RegionAfrica:       "AF",
	RegionAntarctica:   "AN",
	RegionAsia:         "AS",
	RegionEurope:       "EU",
	RegionNorthAmerica: "NA",
	RegionOceania:      "OC",
	RegionSouthAmerica: "SA",
	RegionDefault:      "Default",
	RegionWorld:        "World",
}

var regionNames = map[Region]string{
	RegionUnknown:      "Unknown",
	RegionAfrica:       "Africa",
	RegionAntarctica:   "Antarctica",
	RegionAsia:         "Asia",
	RegionEurope:       "Europe",
	RegionNorthAmerica: "North America",
	RegionOceania:      "Oceania",
	RegionSouthAmerica: "South and Central America",
	RegionDefault:      "Default",
	RegionWorld:        "Globally Available",
}

// ParseRegion maps a region code to its Region, ignoring case. Anything it
// does not recognize is RegionUnknown.
func ParseRegion(s string) Region {
	lower := strings.ToLower(s)
	for r, code := range regionCodes {
		if r != RegionUnknown && strings.ToLower(code) == lower {
			return r
		}
	}
	return RegionUnknown
}

func (r Region) String() string {
	if code, ok := regionCodes[r]; ok {
		return code
	}
	return regionCodes[RegionUnknown]
}

// Name is the human readable label shown on the index page.
func (r Region) Name() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return regionNames[RegionUnknown]
}

func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Region) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("region: %w", err)
	}
	*r = ParseRegion(s)
	return nil
}

type TierKind int

const (
	TierUnknown TierKind = iota
	TierNumeric
	TierTor
)

// Tier is either a numeric rank, the Tor class, or unknown when the record
// carries no tier at all.
type Tier struct {
	Kind TierKind
	Rank uint64
}

var (
	UnknownTier = Tier{Kind: TierUnknown}
	TorTier     = Tier{Kind: TierTor}
)

func NumericTier(rank uint64) Tier {
	return Tier{Kind: TierNumeric, Rank: rank}
}

var ErrInvalidTier = errors.New("not an unsigned integer or \"tor\"")

func ParseTier(s string) (Tier, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return NumericTier(n), nil
	}
	if strings.EqualFold(s, "tor") {
		return TorTier, nil
	}
	return UnknownTier, ErrInvalidTier
}

func (t Tier) String() string {
	switch t.Kind {
	case TierNumeric:
		return strconv.FormatUint(t.Rank, 10)
	case TierTor:
		return "tor"
	default:
		return "unknown"
	}
}

func (t Tier) MarshalJSON() ([]byte, error) {
	if t.Kind == TierNumeric {
		return []byte(strconv.FormatUint(t.Rank, 10)), nil
	}
	return json.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = NumericTier(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tier: %s: %w", data, ErrInvalidTier)
	}
	if strings.EqualFold(s, "unknown") {
		*t = UnknownTier
		return nil
	}
	v, err := ParseTier(s)
	if err != nil {
		return fmt.Errorf("tier: %q: %w", s, err)
	}
	*t = v
	return nil
}

// Protocol is a lowercase URL scheme a mirror can be reached over.
type Protocol string

const (
	ProtocolFtp   Protocol = "ftp"
	ProtocolHttp  Protocol = "http"
	ProtocolHttps Protocol = "https"
	ProtocolRsync Protocol = "rsync"
)

// DefaultProtocol is used by the legacy projection when a mirror lists none.
const DefaultProtocol = ProtocolHttp

func ParseProtocol(s string) (Protocol, bool) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(s))); p {
	case ProtocolFtp, ProtocolHttp, ProtocolHttps, ProtocolRsync:
		return p, true
	}
	return "", false
}

// ParseProtocols splits a comma separated list, dropping unknown tokens and
// keeping the order of the rest.
func ParseProtocols(s string) []Protocol {
	protocols := []Protocol{}
	for _, token := range strings.Split(s, ",") {
		if p, ok := ParseProtocol(token); ok {
			protocols = append(protocols, p)
		}
	}
	return protocols
}

func (p Protocol) String() string {
	return string(p)
}

func (p *Protocol) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("protocol: %w", err)
	}
	v, ok := ParseProtocol(s)
	if !ok {
		return fmt.Errorf("protocol: unknown token %q", s)
	}
	*p = v
	return nil
}
