package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Network Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryNetwork,
		Message:  "API dump fetch failed",
		Detail:   "The API dump could not be downloaded from the configured URL.",
		DocURL:   "https://facet.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryNetwork,
		Message:  "API dump host returned an error status",
		Detail:   "The dump host responded, but not with 200 OK.",
		DocURL:   "https://facet.dev/docs/errors/E002",
	},

	// ============================================
	// Data Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryData,
		Message:  "API dump is not valid JSON",
		Detail:   "The dump file could not be decoded. It may be truncated or not an API dump at all.",
		DocURL:   "https://facet.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryData,
		Message:  "API dump contains no creatable classes",
		Detail:   "Every class in the dump is tagged NotCreatable or Service, so the tag table would be empty.",
		DocURL:   "https://facet.dev/docs/errors/E021",
	},

	// ============================================
	// Generation Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryGenerate,
		Message:  "Tag table collision",
		Detail:   "Two class names lower-case to the same tag, so lookups would be ambiguous.",
		DocURL:   "https://facet.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryGenerate,
		Message:  "Generated table is not valid Go",
		Detail:   "The emitted source failed gofmt. This is a bug in the generator.",
		DocURL:   "https://facet.dev/docs/errors/E041",
	},

	// ============================================
	// CLI Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryCLI,
		Message:  "Output write failed",
		Detail:   "The generated file could not be written to disk.",
		DocURL:   "https://facet.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryCLI,
		Message:  "Dump source not found",
		Detail:   "The --dump argument is neither a readable file nor a URL.",
		DocURL:   "https://facet.dev/docs/errors/E061",
	},
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
