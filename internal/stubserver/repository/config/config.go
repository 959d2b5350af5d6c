package config

const (
	StoreTypeVar    string = "0"
	StoreTypeFile   string = "1"
	StoreTypeDB     string = "2"
	DefaultFilename string = "links.json"
)

type Config struct {
	StoreType string
	Filename  string
	DBDsn     string
}
