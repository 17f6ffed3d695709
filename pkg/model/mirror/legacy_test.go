package mirror

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLegacy_FiltersDisabledAndComposesUrl(t *testing.T) {
	mirrors := []Mirror{
		{Id: 1, BaseUrl: "a.example.org", Region: RegionEurope, Location: "Berlin", Tier: NumericTier(1), Enabled: true, Protocols: []Protocol{ProtocolHttps, ProtocolHttp}},
		{Id: 2, BaseUrl: "b.example.org", Region: RegionAsia, Location: "Tokyo", Tier: NumericTier(2), Enabled: false, Protocols: []Protocol{ProtocolHttp}},
		{Id: 3, BaseUrl: "example.org", Region: RegionWorld, Location: "unknown", Tier: TorTier, Enabled: true, Protocols: []Protocol{}},
	}
	got := Legacy(mirrors)
	if len(got) != 2 {
		t.Fatalf("len(Legacy()) = %d, want 2", len(got))
	}
	if got[0].BaseUrl != "https://a.example.org/" {
		t.Errorf("got[0].BaseUrl = %q", got[0].BaseUrl)
	}
	if got[1].BaseUrl != "http://example.org/" {
		t.Errorf("got[1].BaseUrl = %q, want http://example.org/", got[1].BaseUrl)
	}
	if got[0].Region != RegionEurope || got[0].Location != "Berlin" || got[0].Tier != NumericTier(1) || !got[0].Enabled {
		t.Errorf("got[0] = %+v, fields not carried over", got[0])
	}
}

func TestLegacy_EmptyInput(t *testing.T) {
	data, err := json.Marshal(Legacy(nil))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("Marshal(Legacy(nil)) = %s, want []", data)
	}
}

func TestLegacyMirror_JSON(t *testing.T) {
	l := NewLegacyMirror(Mirror{BaseUrl: "example.org", Region: RegionNorthAmerica, Location: "Chicago", Tier: NumericTier(2), Enabled: true, Protocols: []Protocol{ProtocolRsync}})
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"region":"NA","baseurl":"rsync://example.org/","location":"Chicago","tier":2,"enabled":true}`
	if string(data) != want {
		t.Fatalf("Marshal() = %s\nwant %s", data, want)
	}
}

func TestWriteLegacyTSV(t *testing.T) {
	legacy := Legacy([]Mirror{
		{BaseUrl: "a.example.org", Region: RegionEurope, Location: "Berlin", Tier: NumericTier(1), Enabled: true, Protocols: []Protocol{ProtocolHttps}},
		{BaseUrl: "hidden.example.org", Enabled: false},
		{BaseUrl: "onion.example", Region: RegionWorld, Location: "Tor", Tier: TorTier, Enabled: true},
	})
	var buf bytes.Buffer
	if err := WriteLegacyTSV(&buf, legacy); err != nil {
		t.Fatalf("WriteLegacyTSV() error: %v", err)
	}
	want := "EU\thttps://a.example.org/\tBerlin\t1\ttrue\n" +
		"World\thttp://onion.example/\tTor\ttor\ttrue\n"
	if buf.String() != want {
		t.Fatalf("WriteLegacyTSV() = %q\nwant %q", buf.String(), want)
	}
}
