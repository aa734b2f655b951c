package cmd

// Config carries process level settings. STORE_DRIVER selects the document
// store backend: "memory" keeps everything in process, "postgres" persists
// documents in a relational table and polls for externally committed changes.
type Config struct {
	HTTPPort    string
	StoreDriver string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
}
