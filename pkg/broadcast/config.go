package broadcast

// Mode selects how payloads are handed to the mail provider.
type Mode string

const (
	ModeBatch      Mode = "batch"
	ModeIndividual Mode = "individual"
)

// Config holds broadcast pipeline settings.
type Config struct {
	SiteURL           string  `env:"SITE_URL" envDefault:"https://nn1.dev"`
	Mode              Mode    `env:"BROADCAST_DISPATCH_MODE" envDefault:"batch"`
	MaxBatch          int     `env:"BROADCAST_MAX_BATCH" envDefault:"0"`        // 0 uses the provider maximum
	RatePerSec        float64 `env:"BROADCAST_RATE_PER_SEC" envDefault:"2"`     // provider calls per second, <= 0 disables pacing
	RenderConcurrency int     `env:"BROADCAST_RENDER_CONCURRENCY" envDefault:"0"` // 0 renders all payloads at once
}
