package models

type Config struct {
	Debug bool `yaml:"debug" envconfig:"MAFTOOLS_DEBUG"`

	Api struct {
		Url                 string  `yaml:"url" envconfig:"MAFTOOLS_PUBLIC_URL"`
		Port                string  `yaml:"port" envconfig:"MAFTOOLS_API_INTERNAL_PORT" default:"5000"`
		DomainReferencePath string  `yaml:"domainReferencePath" envconfig:"MAFTOOLS_API_DOMAIN_REFERENCE_PATH"`
		MutationSource      string  `yaml:"mutationSource" envconfig:"MAFTOOLS_API_MUTATION_SOURCE" default:"maf"`
		MafPath             string  `yaml:"mafPath" envconfig:"MAFTOOLS_API_MAF_PATH"`
		OutputDirectory     string  `yaml:"outputDirectory" envconfig:"MAFTOOLS_API_OUTPUT_DIRECTORY" default:"/tmp/maftools"`
		DefaultTop          int     `yaml:"defaultTop" envconfig:"MAFTOOLS_API_DEFAULT_TOP" default:"5"`
		PlotWidthInches     float64 `yaml:"plotWidthInches" envconfig:"MAFTOOLS_API_PLOT_WIDTH" default:"5"`
		PlotHeightInches    float64 `yaml:"plotHeightInches" envconfig:"MAFTOOLS_API_PLOT_HEIGHT" default:"5"`
	} `yaml:"api"`

	Elasticsearch struct {
		Url        string `yaml:"url" envconfig:"MAFTOOLS_ES_URL"`
		Username   string `yaml:"username" envconfig:"MAFTOOLS_ES_USERNAME"`
		Password   string `yaml:"password" envconfig:"MAFTOOLS_ES_PASSWORD"`
		Index      string `yaml:"index" envconfig:"MAFTOOLS_ES_MUTATIONS_INDEX" default:"mutations"`
		MaxResults int    `yaml:"maxResults" envconfig:"MAFTOOLS_ES_MAX_RESULTS" default:"10000"`
	} `yaml:"elasticsearch"`

	Runs struct {
		TtlMinutes                int `yaml:"ttlMinutes" envconfig:"MAFTOOLS_RUNS_TTL_MINUTES" default:"60"`
		SanitationIntervalMinutes int `yaml:"sanitationIntervalMinutes" envconfig:"MAFTOOLS_RUNS_SANITATION_INTERVAL_MINUTES" default:"15"`
	} `yaml:"runs"`
}
