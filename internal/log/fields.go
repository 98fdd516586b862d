package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldPath        = "path"
	FieldRows        = "rows"
	FieldSkipped     = "skipped"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldKeyword     = "keyword"
	FieldDuration    = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentStorage = "storage"
	ComponentCharts  = "charts"
	ComponentReport  = "report"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpAppend  = "append"
	OpRender  = "render"
	OpExport  = "export"
	OpPredict = "predict"
)
