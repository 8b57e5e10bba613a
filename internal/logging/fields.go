package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldPlatform is the standardized structured logging key for platform identifiers.
	FieldPlatform = "platform"
	// FieldContentType is the standardized structured logging key for classified content types.
	FieldContentType = "content_type"
	// FieldDecisionType is the standardized structured logging key for decision categories.
	FieldDecisionType = "decision_type"
	// FieldEventType is the standardized structured logging key for event classification on warnings.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized structured logging key carrying the operator's next step.
	FieldErrorHint = "error_hint"
	// FieldReportID is the standardized structured logging key for stored report identifiers.
	FieldReportID = "report_id"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
)
