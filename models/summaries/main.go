package summaries

import (
	"strconv"
	"strings"

	"github.com/JohnMCMa/maftools/models/constants"
	"github.com/JohnMCMa/maftools/models/constants/granularity"
	"github.com/JohnMCMa/maftools/models/indexes"
)

// ParsedMutation is a mutation record with its amino-acid position resolved.
type ParsedMutation struct {
	indexes.MutationRecord
	Conversion string `json:"conversion"`
	Position   int    `json:"position"`
}

// Key is the grouping key of an aggregated record. Each granularity has
// its own fixed-shape key type.
type Key[K any] interface {
	comparable
	GeneSymbol() string
	AAPos() int
	// Compare orders keys by their fields, left to right.
	Compare(other K) int
	Columns() []string
	Values() []string
}

// PositionKey groups by gene, classification and position.
type PositionKey struct {
	Gene           string `json:"gene"`
	Classification string `json:"Variant_Classification"`
	Position       int    `json:"AAPos"`
}

func (k PositionKey) GeneSymbol() string { return k.Gene }
func (k PositionKey) AAPos() int         { return k.Position }

func (k PositionKey) Compare(o PositionKey) int {
	if c := strings.Compare(k.Gene, o.Gene); c != 0 {
		return c
	}
	if c := strings.Compare(k.Classification, o.Classification); c != 0 {
		return c
	}
	return compareInts(k.Position, o.Position)
}

func (k PositionKey) Columns() []string {
	return []string{"gene", "AAPos", "Variant_Classification"}
}

func (k PositionKey) Values() []string {
	return []string{k.Gene, strconv.Itoa(k.Position), k.Classification}
}

// ChangeKey groups by gene, classification, protein change and position.
type ChangeKey struct {
	Gene           string `json:"gene"`
	Classification string `json:"Variant_Classification"`
	ProteinChange  string `json:"AAChange"`
	Position       int    `json:"AAPos"`
}

func (k ChangeKey) GeneSymbol() string { return k.Gene }
func (k ChangeKey) AAPos() int         { return k.Position }

func (k ChangeKey) Compare(o ChangeKey) int {
	if c := strings.Compare(k.Gene, o.Gene); c != 0 {
		return c
	}
	if c := strings.Compare(k.Classification, o.Classification); c != 0 {
		return c
	}
	if c := strings.Compare(k.ProteinChange, o.ProteinChange); c != 0 {
		return c
	}
	return compareInts(k.Position, o.Position)
}

func (k ChangeKey) Columns() []string {
	return []string{"gene", "AAPos", "Variant_Classification", "AAChange"}
}

func (k ChangeKey) Values() []string {
	return []string{k.Gene, strconv.Itoa(k.Position), k.Classification, k.ProteinChange}
}

type AggregatedRecord[K Key[K]] struct {
	Key      K       `json:"key"`
	N        int     `json:"N"`
	Total    int     `json:"total"`
	Fraction float64 `json:"fraction"`
}

type DomainAnnotation struct {
	DomainLabel string `json:"DomainLabel"`
	Pfam        string `json:"pfam"`
	Description string `json:"Description"`
}

// AnnotatedRecord carries the matched domain, or a nil Domain when no
// interval of the gene contains the position.
type AnnotatedRecord[K Key[K]] struct {
	AggregatedRecord[K]
	Domain *DomainAnnotation `json:"domain"`
}

type DomainSummaryRecord struct {
	DomainLabel string `json:"DomainLabel"`
	NMuts       int    `json:"nMuts"`
	NGenes      int    `json:"nGenes"`
	Pfam        string `json:"pfam"`
	Description string `json:"Description"`
}

var DomainSummaryColumns = []string{"DomainLabel", "nMuts", "nGenes", "pfam", "Description"}

func (d DomainSummaryRecord) Values() []string {
	return []string{d.DomainLabel, strconv.Itoa(d.NMuts), strconv.Itoa(d.NGenes), d.Pfam, d.Description}
}

type Diagnostics struct {
	ProteinChangeField string `json:"proteinChangeField"`
	InputRecords       int    `json:"inputRecords"`
	ParseFailures      int    `json:"parseFailures"`
	ParsedRecords      int    `json:"parsedRecords"`
	Groups             int    `json:"groups"`
	Matched            int    `json:"matched"`
	Unmatched          int    `json:"unmatched"`
	DroppedDomainRows  int    `json:"droppedDomainRows"`
}

// Report holds both summary tables of a run. Exactly one of ByPosition
// and ByChange is populated, depending on Granularity.
type Report struct {
	Granularity  constants.Granularity          `json:"granularity"`
	VariantClass constants.VariantClass         `json:"variantClass"`
	ByPosition   []AnnotatedRecord[PositionKey] `json:"byPosition,omitempty"`
	ByChange     []AnnotatedRecord[ChangeKey]   `json:"byPositionAndChange,omitempty"`
	Domains      []DomainSummaryRecord          `json:"domainSummary"`
	Highlighted  []string                       `json:"highlighted"`
	Diagnostics  Diagnostics                    `json:"diagnostics"`
}

// ProteinTable returns the protein summary as a header plus string rows.
func (r *Report) ProteinTable() ([]string, [][]string) {
	if r.Granularity == granularity.ByPositionAndChange {
		return ProteinHeader[ChangeKey](), ProteinRows(r.ByChange)
	}
	return ProteinHeader[PositionKey](), ProteinRows(r.ByPosition)
}

// DomainTable returns the domain summary as a header plus string rows.
func (r *Report) DomainTable() ([]string, [][]string) {
	rows := make([][]string, 0, len(r.Domains))
	for _, d := range r.Domains {
		rows = append(rows, d.Values())
	}
	return DomainSummaryColumns, rows
}

func ProteinHeader[K Key[K]]() []string {
	var k K
	return append(k.Columns(), "N", "total", "fraction", "DomainLabel", "pfam", "Description")
}

// ProteinRows renders annotated records; unmatched records get "NA" domain cells.
func ProteinRows[K Key[K]](records []AnnotatedRecord[K]) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := append(r.Key.Values(),
			strconv.Itoa(r.N),
			strconv.Itoa(r.Total),
			strconv.FormatFloat(r.Fraction, 'g', -1, 64))
		if r.Domain != nil {
			row = append(row, r.Domain.DomainLabel, r.Domain.Pfam, r.Domain.Description)
		} else {
			row = append(row, "NA", "NA", "NA")
		}
		rows = append(rows, row)
	}
	return rows
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
