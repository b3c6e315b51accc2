package dub

import (
	"strings"
	"testing"
	"time"
)

type schemaSample struct {
	ID       string                      `json:"id" dub:"required"`
	Name     Optional[string]            `json:"name"`
	Count    int                         `json:"count"`
	Interval Optional[Interval]          `json:"interval"`
	Seen     Optional[time.Time]         `json:"seen"`
	Tags     []Tag                       `json:"tags"`
	Labels   Optional[map[string]string] `json:"labels"`
}

func TestUnmarshalThreePresenceStates(t *testing.T) {
	var got schemaSample
	if err := Unmarshal([]byte(`{"id":"a","name":null,"count":3}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Name.IsNull() || got.Name.IsSet() {
		t.Fatalf("expected name null, got %+v", got.Name)
	}
	if got.Interval.IsPresent() {
		t.Fatalf("expected interval unset, got %+v", got.Interval)
	}
	if got.Count != 3 {
		t.Fatalf("expected count 3, got %d", got.Count)
	}
}

func TestMarshalElidesUnsetAndKeepsNull(t *testing.T) {
	seen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data, err := Marshal(schemaSample{
		ID:     "a",
		Name:   Null[string](),
		Seen:   Some(seen),
		Labels: Some(map[string]string{"env": "prod"}),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	assertJSONEqual(t, data, `{"id":"a","name":null,"count":0,"seen":"2024-05-01T12:00:00Z","tags":null,"labels":{"env":"prod"}}`)
	if strings.Contains(string(data), "interval") {
		t.Fatalf("unset optional leaked into %s", data)
	}
}

func TestRoundTripPreservesValues(t *testing.T) {
	in := schemaSample{
		ID:       "link_1",
		Name:     String("docs"),
		Count:    42,
		Interval: Some(Interval7d),
		Tags:     []Tag{{ID: "t1", Name: "blog", Color: TagColorBlue}},
	}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out schemaSample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != in.ID || out.Count != in.Count || out.Name.Or("") != "docs" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if iv, _ := out.Interval.Get(); iv != Interval7d {
		t.Fatalf("expected interval 7d, got %q", iv)
	}
	if len(out.Tags) != 1 || out.Tags[0].Color != TagColorBlue {
		t.Fatalf("unexpected tags %+v", out.Tags)
	}
}

func TestUnmarshalRejectsUnknownEnum(t *testing.T) {
	var got schemaSample
	err := Unmarshal([]byte(`{"id":"a","interval":"2w"}`), &got)
	verr := asValidation(t, err)
	if verr.Field != "/interval" || verr.Expected != "Interval" {
		t.Fatalf("unexpected error %+v", verr)
	}
}

func TestMarshalRejectsUnknownEnum(t *testing.T) {
	_, err := Marshal(CreateTagRequest{Tag: "news", Color: Some(TagColor("teal"))})
	verr := asValidation(t, err)
	if verr.Field != "/color" {
		t.Fatalf("expected /color, got %q", verr.Field)
	}
}

func TestUnmarshalReportsFirstFailingIndex(t *testing.T) {
	var got []Tag
	err := Unmarshal([]byte(`[
		{"id":"t0","name":"a","color":"red"},
		{"id":"t1","name":"b","color":"blue"},
		{"id":"t2","name":"c","color":"mauve"},
		{"id":"t3","name":"d","color":"mauve"}
	]`), &got)
	verr := asValidation(t, err)
	if verr.Field != "/2/color" {
		t.Fatalf("expected /2/color, got %q", verr.Field)
	}
}

func TestUnmarshalMissingRequiredField(t *testing.T) {
	var got Tag
	err := Unmarshal([]byte(`{"id":"t0","color":"red"}`), &got)
	verr := asValidation(t, err)
	if verr.Field != "/name" {
		t.Fatalf("expected /name, got %q", verr.Field)
	}
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	var got schemaSample
	err := Unmarshal([]byte(`{"id":"a","count":"three"}`), &got)
	verr := asValidation(t, err)
	if verr.Field != "/count" || verr.Expected != "integer" || verr.Got != "string" {
		t.Fatalf("unexpected error %+v", verr)
	}
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	var got Tag
	if err := Unmarshal([]byte(`{"id":"t0","name":"a","color":"red","createdAt":"2024-01-01T00:00:00Z"}`), &got); err != nil {
		t.Fatalf("unknown keys should be ignored: %v", err)
	}
}

func TestUnmarshalMalformedJSON(t *testing.T) {
	var got Tag
	if err := Unmarshal([]byte(`{"id":`), &got); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMarshalRequiredFieldMissing(t *testing.T) {
	_, err := Marshal(CreateLinkRequest{})
	verr := asValidation(t, err)
	if verr.Field != "/url" {
		t.Fatalf("expected /url, got %q", verr.Field)
	}
}

func TestCountryEnum(t *testing.T) {
	if _, err := ParseCountry("US"); err != nil {
		t.Fatalf("US should be known: %v", err)
	}
	if _, err := ParseCountry("us"); err == nil {
		t.Fatalf("lower-case codes must be rejected")
	}
	if !CountryXK.IsKnown() {
		t.Fatalf("XK should be known")
	}
	var row CountryClicks
	if err := Unmarshal([]byte(`{"country":"ZZ","clicks":1}`), &row); !IsValidation(err) {
		t.Fatalf("expected unknown country to fail, got %v", err)
	}
}

func TestEmbeddedStructFieldsAreFlattened(t *testing.T) {
	data, err := Marshal(analyticsParams{Kind: AnalyticsCountry, AnalyticsRequest: AnalyticsRequest{Domain: String("dub.sh")}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	assertJSONEqual(t, data, `{"kind":"country","domain":"dub.sh"}`)
}

func TestUnmarshalRejectsNullForPlainFields(t *testing.T) {
	var tag Tag
	err := Unmarshal([]byte(`{"id":"t0","name":null,"color":"red"}`), &tag)
	verr := asValidation(t, err)
	if verr.Field != "/name" || verr.Got != "null" {
		t.Fatalf("expected null mismatch at /name, got %+v", verr)
	}

	var tags []Tag
	err = Unmarshal([]byte(`[{"id":"t0","name":"a","color":"red"},null]`), &tags)
	verr = asValidation(t, err)
	if verr.Field != "/1" {
		t.Fatalf("expected failure at /1, got %q", verr.Field)
	}

	var link Link
	if err := Unmarshal([]byte(`null`), &link); !IsValidation(err) {
		t.Fatalf("expected validation error for null link, got %v", err)
	}
	var links []Link
	if err := Unmarshal([]byte(`null`), &links); !IsValidation(err) {
		t.Fatalf("expected validation error for null list, got %v", err)
	}
}

func TestUnmarshalRejectsTrailingData(t *testing.T) {
	var tag Tag
	err := Unmarshal([]byte(`{"id":"t0","name":"a","color":"red"} trailing{`), &tag)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := Unmarshal([]byte(`{"id":"t0","name":"a","color":"red"}`+"\n"), &tag); err != nil {
		t.Fatalf("trailing whitespace should be accepted: %v", err)
	}
}

func TestCreateLinkRequestRoundTrip(t *testing.T) {
	expires := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	in := CreateLinkRequest{
		URL:       "https://dub.co",
		Key:       String("launch"),
		ExpiresAt: Some(expires),
		Geo:       Some(map[string]string{"US": "https://dub.co/us"}),
		TagIDs:    Some([]string{"tag_1", "tag_2"}),
		Password:  Null[string](),
	}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out CreateLinkRequest
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	again, err := Marshal(out)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	assertJSONEqual(t, again, string(data))
	if got, _ := out.ExpiresAt.Get(); !got.Equal(expires) {
		t.Fatalf("expected expiresAt %v, got %v", expires, got)
	}
	if geo, _ := out.Geo.Get(); geo["US"] != "https://dub.co/us" {
		t.Fatalf("unexpected geo %v", geo)
	}
	if !out.Password.IsNull() || out.Domain.IsPresent() {
		t.Fatalf("presence not preserved: password=%+v domain=%+v", out.Password, out.Domain)
	}
}

func TestUpdateLinkRequestRoundTrip(t *testing.T) {
	in := UpdateLinkRequest{
		LinkID:    "link_1",
		Title:     String("Docs"),
		ExpiresAt: Null[time.Time](),
		Geo:       Null[map[string]string](),
		TagIDs:    Some([]string{}),
	}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out UpdateLinkRequest
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.LinkID != "link_1" || out.Title.Or("") != "Docs" {
		t.Fatalf("unexpected values %+v", out)
	}
	if !out.ExpiresAt.IsNull() || !out.Geo.IsNull() {
		t.Fatalf("expected nulls preserved, got expiresAt=%+v geo=%+v", out.ExpiresAt, out.Geo)
	}
	if ids, ok := out.TagIDs.Get(); !ok || len(ids) != 0 {
		t.Fatalf("expected empty tag list, got %+v", out.TagIDs)
	}
	if out.URL.IsPresent() || out.Comments.IsPresent() {
		t.Fatalf("unset fields became present: %+v", out)
	}
}

func TestParseEnums(t *testing.T) {
	cases := []struct {
		name  string
		parse func(string) (string, error)
		good  string
	}{
		{"LinkSort", func(s string) (string, error) { v, err := ParseLinkSort(s); return v.String(), err }, "clicks"},
		{"LinkGroupBy", func(s string) (string, error) { v, err := ParseLinkGroupBy(s); return v.String(), err }, "domain"},
		{"QRLevel", func(s string) (string, error) { v, err := ParseQRLevel(s); return v.String(), err }, "H"},
		{"WorkspacePlan", func(s string) (string, error) { v, err := ParseWorkspacePlan(s); return v.String(), err }, "pro"},
		{"WorkspaceRole", func(s string) (string, error) { v, err := ParseWorkspaceRole(s); return v.String(), err }, "owner"},
		{"DomainType", func(s string) (string, error) { v, err := ParseDomainType(s); return v.String(), err }, "redirect"},
		{"AnalyticsKind", func(s string) (string, error) { v, err := ParseAnalyticsKind(s); return v.String(), err }, "country"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.parse(tc.good)
			if err != nil || got != tc.good {
				t.Fatalf("parse %q: got %q, %v", tc.good, got, err)
			}
			if _, err := tc.parse("nope"); !IsValidation(err) {
				t.Fatalf("expected validation error for unknown value, got %v", err)
			}
		})
	}
}
