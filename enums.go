package dub

import "fmt"

// Every enum in this package is closed: values outside the documented set
// are rejected when encoding a request and when decoding a response.

func unknownEnum(name, val string) error {
	return &ValidationError{Field: "/", Expected: name, Got: fmt.Sprintf("%q", val), Message: fmt.Sprintf("%q is not a known %s", val, name)}
}

// Interval is the time window of an analytics query.
type Interval string

const (
	Interval1h  Interval = "1h"
	Interval24h Interval = "24h"
	Interval7d  Interval = "7d"
	Interval30d Interval = "30d"
	Interval90d Interval = "90d"
	IntervalAll Interval = "all"
)

// ParseInterval validates an analytics interval.
func ParseInterval(val string) (Interval, error) {
	i := Interval(val)
	if !i.IsKnown() {
		return "", unknownEnum("Interval", val)
	}
	return i, nil
}

// IsKnown reports whether i is one of the documented intervals.
func (i Interval) IsKnown() bool {
	switch i {
	case Interval1h, Interval24h, Interval7d, Interval30d, Interval90d, IntervalAll:
		return true
	default:
		return false
	}
}

func (i Interval) String() string { return string(i) }

// TagColor is the display color of a tag.
type TagColor string

const (
	TagColorRed    TagColor = "red"
	TagColorYellow TagColor = "yellow"
	TagColorGreen  TagColor = "green"
	TagColorBlue   TagColor = "blue"
	TagColorPurple TagColor = "purple"
	TagColorPink   TagColor = "pink"
	TagColorBrown  TagColor = "brown"
)

// ParseTagColor validates a tag color.
func ParseTagColor(val string) (TagColor, error) {
	c := TagColor(val)
	if !c.IsKnown() {
		return "", unknownEnum("TagColor", val)
	}
	return c, nil
}

// IsKnown reports whether c is one of the documented colors.
func (c TagColor) IsKnown() bool {
	switch c {
	case TagColorRed, TagColorYellow, TagColorGreen, TagColorBlue, TagColorPurple, TagColorPink, TagColorBrown:
		return true
	default:
		return false
	}
}

func (c TagColor) String() string { return string(c) }

// LinkSort orders the result of a link listing.
type LinkSort string

const (
	LinkSortCreatedAt   LinkSort = "createdAt"
	LinkSortClicks      LinkSort = "clicks"
	LinkSortLastClicked LinkSort = "lastClicked"
)

// IsKnown reports whether s is a documented sort key.
func (s LinkSort) IsKnown() bool {
	switch s {
	case LinkSortCreatedAt, LinkSortClicks, LinkSortLastClicked:
		return true
	default:
		return false
	}
}

// ParseLinkSort validates a LinkSort value.
func ParseLinkSort(val string) (LinkSort, error) {
	v := LinkSort(val)
	if !v.IsKnown() {
		return "", unknownEnum("LinkSort", val)
	}
	return v, nil
}

func (s LinkSort) String() string { return string(s) }

// LinkGroupBy groups a link count.
type LinkGroupBy string

const (
	LinkGroupByDomain LinkGroupBy = "domain"
	LinkGroupByTagID  LinkGroupBy = "tagId"
)

// IsKnown reports whether g is a documented grouping.
func (g LinkGroupBy) IsKnown() bool {
	return g == LinkGroupByDomain || g == LinkGroupByTagID
}

// ParseLinkGroupBy validates a LinkGroupBy value.
func ParseLinkGroupBy(val string) (LinkGroupBy, error) {
	v := LinkGroupBy(val)
	if !v.IsKnown() {
		return "", unknownEnum("LinkGroupBy", val)
	}
	return v, nil
}

func (g LinkGroupBy) String() string { return string(g) }

// QRLevel is the error-correction level of a QR code.
type QRLevel string

const (
	QRLevelL QRLevel = "L"
	QRLevelM QRLevel = "M"
	QRLevelQ QRLevel = "Q"
	QRLevelH QRLevel = "H"
)

// IsKnown reports whether l is a valid correction level.
func (l QRLevel) IsKnown() bool {
	switch l {
	case QRLevelL, QRLevelM, QRLevelQ, QRLevelH:
		return true
	default:
		return false
	}
}

// ParseQRLevel validates a QRLevel value.
func ParseQRLevel(val string) (QRLevel, error) {
	v := QRLevel(val)
	if !v.IsKnown() {
		return "", unknownEnum("QRLevel", val)
	}
	return v, nil
}

func (l QRLevel) String() string { return string(l) }

// WorkspacePlan is the billing plan of a workspace.
type WorkspacePlan string

const (
	WorkspacePlanFree          WorkspacePlan = "free"
	WorkspacePlanPro           WorkspacePlan = "pro"
	WorkspacePlanBusiness      WorkspacePlan = "business"
	WorkspacePlanBusinessPlus  WorkspacePlan = "business plus"
	WorkspacePlanBusinessExtra WorkspacePlan = "business extra"
	WorkspacePlanBusinessMax   WorkspacePlan = "business max"
	WorkspacePlanEnterprise    WorkspacePlan = "enterprise"
)

// IsKnown reports whether p is a documented plan.
func (p WorkspacePlan) IsKnown() bool {
	switch p {
	case WorkspacePlanFree, WorkspacePlanPro, WorkspacePlanBusiness, WorkspacePlanBusinessPlus,
		WorkspacePlanBusinessExtra, WorkspacePlanBusinessMax, WorkspacePlanEnterprise:
		return true
	default:
		return false
	}
}

// ParseWorkspacePlan validates a WorkspacePlan value.
func ParseWorkspacePlan(val string) (WorkspacePlan, error) {
	v := WorkspacePlan(val)
	if !v.IsKnown() {
		return "", unknownEnum("WorkspacePlan", val)
	}
	return v, nil
}

func (p WorkspacePlan) String() string { return string(p) }

// WorkspaceRole is a member's role within a workspace.
type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "owner"
	WorkspaceRoleMember WorkspaceRole = "member"
)

// IsKnown reports whether r is a documented role.
func (r WorkspaceRole) IsKnown() bool {
	return r == WorkspaceRoleOwner || r == WorkspaceRoleMember
}

// ParseWorkspaceRole validates a WorkspaceRole value.
func ParseWorkspaceRole(val string) (WorkspaceRole, error) {
	v := WorkspaceRole(val)
	if !v.IsKnown() {
		return "", unknownEnum("WorkspaceRole", val)
	}
	return v, nil
}

func (r WorkspaceRole) String() string { return string(r) }

// DomainType controls how a domain serves its links.
type DomainType string

const (
	DomainTypeRedirect DomainType = "redirect"
	DomainTypeRewrite  DomainType = "rewrite"
)

// IsKnown reports whether d is a documented domain type.
func (d DomainType) IsKnown() bool {
	return d == DomainTypeRedirect || d == DomainTypeRewrite
}

// ParseDomainType validates a DomainType value.
func ParseDomainType(val string) (DomainType, error) {
	v := DomainType(val)
	if !v.IsKnown() {
		return "", unknownEnum("DomainType", val)
	}
	return v, nil
}

func (d DomainType) String() string { return string(d) }

// AnalyticsKind selects the analytics endpoint.
type AnalyticsKind string

const (
	AnalyticsClicks     AnalyticsKind = "clicks"
	AnalyticsTimeseries AnalyticsKind = "timeseries"
	AnalyticsCountry    AnalyticsKind = "country"
	AnalyticsCity       AnalyticsKind = "city"
	AnalyticsDevice     AnalyticsKind = "device"
	AnalyticsBrowser    AnalyticsKind = "browser"
	AnalyticsOS         AnalyticsKind = "os"
	AnalyticsReferer    AnalyticsKind = "referer"
	AnalyticsTopLinks   AnalyticsKind = "top-links"
	AnalyticsTopURLs    AnalyticsKind = "top-urls"
)

// IsKnown reports whether k names an analytics endpoint.
func (k AnalyticsKind) IsKnown() bool {
	switch k {
	case AnalyticsClicks, AnalyticsTimeseries, AnalyticsCountry, AnalyticsCity, AnalyticsDevice,
		AnalyticsBrowser, AnalyticsOS, AnalyticsReferer, AnalyticsTopLinks, AnalyticsTopURLs:
		return true
	default:
		return false
	}
}

// ParseAnalyticsKind validates a AnalyticsKind value.
func ParseAnalyticsKind(val string) (AnalyticsKind, error) {
	v := AnalyticsKind(val)
	if !v.IsKnown() {
		return "", unknownEnum("AnalyticsKind", val)
	}
	return v, nil
}

func (k AnalyticsKind) String() string { return string(k) }
