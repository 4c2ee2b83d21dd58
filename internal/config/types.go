package config

type Config struct {
	DataDir      string
	DatabasePath string // ":memory:" keeps the catalog for this run only
	CatalogFile  string // optional videos.txt imported on startup
	LogLevel     string // debug/info/warn/error
	RandomSeed   int64  // 0 seeds from crypto/rand
	Prompt       string
}
