package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// RawRecord is one row of the source table export. Scalar columns are kept
// verbatim; the nested columns hold JSON-encoded arrays that may be absent,
// empty, or malformed.
type RawRecord struct {
	ID             string
	Name           string
	Position       string
	About          string
	URL            string
	Avatar         string
	City           string
	CountryCode    string
	Region         string
	CurrentCompany string
	CompanyID      string
	Timestamp      string

	// Nested JSON columns, unparsed.
	Experience          string
	Education           string
	Languages           string
	Certifications      string
	VolunteerExperience string
	Groups              string
	Posts               string
	PeopleAlsoViewed    string
}

// Profile is the corpus record: flat scalars plus the canonical embedding
// text. Nested structures from the raw record are not retained; everything
// semantically relevant is folded into EmbeddingText during normalization.
// A profile's identity is its position in the corpus sequence for one build;
// ProfileID is the source-provided external identifier and is preserved
// even when empty.
type Profile struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	About          string `json:"about"`
	ProfileURL     string `json:"profile_url"`
	Avatar         string `json:"avatar"`
	City           string `json:"city"`
	CountryCode    string `json:"country_code"`
	Region         string `json:"region"`
	CurrentCompany string `json:"current_company"`
	CompanyID      string `json:"company_id"`
	EmbeddingText  string `json:"embedding_text"`
	Timestamp      string `json:"timestamp"`
	ProfileID      string `json:"profile_id"`
}

// EducationItem ties an institution to its degree details. One raw
// education entry produces exactly one item.
type EducationItem struct {
	Institution string
	Degree      string
	Field       string
	Major       string
	Minor       string
	StartYear   string
	EndYear     string
	URL         string
}

// ExperienceItem ties a company to a single role held there. A raw entry
// with a nested positions list expands into one item per position, each
// inheriting the parent's company and industry.
type ExperienceItem struct {
	Company     string
	Industry    string
	Title       string
	Description string
	StartDate   string
	EndDate     string
}

// Fingerprint generates a deterministic 64-bit content hash using BLAKE2b.
// Identical content always produces identical fingerprints; the corpus
// checksum recorded in build metadata is derived from it.
func Fingerprint(text string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
