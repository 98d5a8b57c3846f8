package cli

// Config carries the resolved CLI options for one generation run
type Config struct {
	Directories   []string // directories to scan, ./... patterns allowed
	OutputDir     string   // root for generated client files
	APIGroup      string   // explicit API group name, "" = derive from go.mod
	RuntimeImport string   // module specifier for the dispatch runtime
	Verbose       bool
}
