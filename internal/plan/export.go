package plan

import (
	"gopkg.in/yaml.v3"

	"client-generator/internal/apidesc"
	"client-generator/internal/diagnostic"
	"client-generator/internal/partition"
	"client-generator/internal/pipeline"
	"client-generator/internal/policy"
)

// Document is the YAML form of a Plan.
type Document struct {
	Namespace   string                     `yaml:"namespace"`
	Policy      policy.View                `yaml:"policy"`
	Interfaces  []InterfaceDoc             `yaml:"interfaces"`
	Wiring      *pipeline.ClientWiringPlan `yaml:"wiring,omitempty"`
	Dropped     []DroppedDoc               `yaml:"dropped,omitempty"`
	Diagnostics []DiagnosticDoc            `yaml:"diagnostics,omitempty"`
}

// InterfaceDoc is one exported interface.
type InterfaceDoc struct {
	Name     string      `yaml:"name"`
	GroupKey string      `yaml:"groupKey,omitempty"`
	Methods  []MethodDoc `yaml:"methods"`
}

// MethodDoc is one exported method.
type MethodDoc struct {
	Name         string         `yaml:"name"`
	Operation    string         `yaml:"operation"`
	HTTPMethod   string         `yaml:"httpMethod"`
	Path         string         `yaml:"path"`
	Returns      string         `yaml:"returns"`
	AcceptHeader string         `yaml:"acceptHeader,omitempty"`
	Cancellable  bool           `yaml:"cancellable,omitempty"`
	Parameters   []ParameterDoc `yaml:"parameters,omitempty"`
}

// ParameterDoc is one exported method parameter.
type ParameterDoc struct {
	Name     string           `yaml:"name"`
	Type     string           `yaml:"type,omitempty"`
	Required bool             `yaml:"required"`
	In       apidesc.Location `yaml:"in"`
}

// DroppedDoc is one filtered-out operation.
type DroppedDoc struct {
	Operation string `yaml:"operation"`
	Reason    string `yaml:"reason"`
}

// DiagnosticDoc is one exported warning. Infos are not exported.
type DiagnosticDoc struct {
	Code      string `yaml:"code"`
	Message   string `yaml:"message"`
	Interface string `yaml:"interface,omitempty"`
	Operation string `yaml:"operation,omitempty"`
}

// Export converts a plan into its document form.
func Export(plan *Plan) *Document {
	doc := &Document{
		Namespace:  plan.Namespace,
		Policy:     plan.Policy,
		Interfaces: make([]InterfaceDoc, 0, len(plan.Interfaces)),
		Wiring:     plan.Wiring,
	}

	for _, iface := range plan.Interfaces {
		doc.Interfaces = append(doc.Interfaces, exportInterface(iface))
	}

	for _, d := range plan.Dropped {
		doc.Dropped = append(doc.Dropped, DroppedDoc{Operation: d.Operation.Label(), Reason: d.Reason.String()})
	}

	for _, d := range plan.Diagnostics.Warnings {
		doc.Diagnostics = append(doc.Diagnostics, exportDiagnostic(d))
	}

	return doc
}

// ExportYAML renders plan as YAML.
func ExportYAML(plan *Plan) ([]byte, error) {
	return yaml.Marshal(Export(plan))
}

func exportInterface(iface partition.InterfaceDefinition) InterfaceDoc {
	out := InterfaceDoc{
		Name:     iface.Name,
		GroupKey: iface.GroupKey,
		Methods:  make([]MethodDoc, 0, len(iface.Methods)),
	}

	for _, m := range iface.Methods {
		md := MethodDoc{
			Name:         m.Name,
			Operation:    m.Operation.Label(),
			HTTPMethod:   m.Operation.Method,
			Path:         m.Operation.Path,
			Returns:      m.Returns.String(),
			AcceptHeader: m.AcceptHeader,
			Cancellable:  m.Cancellable,
		}

		for _, p := range m.Parameters {
			md.Parameters = append(md.Parameters, ParameterDoc{
				Name:     p.Name,
				Type:     p.Type,
				Required: p.Required,
				In:       p.Location,
			})
		}

		out.Methods = append(out.Methods, md)
	}

	return out
}

func exportDiagnostic(d diagnostic.Diagnostic) DiagnosticDoc {
	return DiagnosticDoc{
		Code:      d.Code,
		Message:   d.Message,
		Interface: d.Interface,
		Operation: d.Operation,
	}
}
