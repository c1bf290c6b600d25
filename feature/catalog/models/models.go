package models

// ConfigurableAttribute describes one attribute a configurable product varies on,
// together with the option values its linked variations actually use.
type ConfigurableAttribute struct {
	ID            uint             `json:"id"`
	AttributeID   uint             `json:"attribute_id"`
	AttributeCode string           `json:"attribute_code"`
	FrontendLabel string           `json:"frontend_label"`
	Label         string           `json:"label"`
	UseDefault    bool             `json:"use_default"`
	Position      int              `json:"position"`
	Values        []AttributeValue `json:"values"`
}

// AttributeValue is one selectable option of a configurable attribute.
type AttributeValue struct {
	ValueIndex uint   `json:"value_index"`
	Label      string `json:"label"`
}

// UsedAttribute is an EAV attribute backing a configurable product's options.
type UsedAttribute struct {
	AttributeID   uint   `json:"attribute_id"`
	AttributeCode string `json:"attribute_code"`
	FrontendLabel string `json:"frontend_label"`
	FrontendInput string `json:"frontend_input"`
	BackendType   string `json:"backend_type"`
}
