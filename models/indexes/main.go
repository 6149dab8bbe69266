package indexes

// MutationRecord is one mutation call as handed out by a mutation store.
// ProteinChange holds the value of whichever protein-change column was
// resolved for the run; it may be empty.
type MutationRecord struct {
	HugoSymbol            string `json:"Hugo_Symbol" mapstructure:"Hugo_Symbol"`
	VariantType           string `json:"Variant_Type" mapstructure:"Variant_Type"`
	VariantClassification string `json:"Variant_Classification" mapstructure:"Variant_Classification"`
	ProteinChange         string `json:"-" mapstructure:"-"`
}

// DomainInterval is one Pfam domain occurrence on a protein.
// Start and End are inclusive amino-acid positions.
type DomainInterval struct {
	Gene        string `json:"HGNC"`
	RefseqID    string `json:"refseq.ID,omitempty"`
	ProteinID   string `json:"protein.ID,omitempty"`
	AALength    int    `json:"aa.length,omitempty"`
	Start       int    `json:"Start"`
	End         int    `json:"End"`
	DomainLabel string `json:"DomainLabel"`
	Pfam        string `json:"pfam"`
	Description string `json:"Description"`
}

// Contains reports whether [start, end] lies within the interval on the same gene.
func (d DomainInterval) Contains(gene string, start, end int) bool {
	return d.Gene == gene && d.Start <= start && end <= d.End
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_LONG = map[string]interface{}{"type": "long"}

// Mapping of the mutations index; protein change columns are all
// indexed as text so that any of the known candidates can be resolved.
var MUTATION_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"Hugo_Symbol":            MAPPING_TEXT,
		"Variant_Type":           MAPPING_TEXT,
		"Variant_Classification": MAPPING_TEXT,
		"Tumor_Sample_Barcode":   MAPPING_TEXT,
		"HGVSp_Short":            MAPPING_TEXT,
		"Protein_Change":         MAPPING_TEXT,
		"AAChange":               MAPPING_TEXT,
		"Start_Position":         MAPPING_LONG,
		"End_Position":           MAPPING_LONG,
	},
}
