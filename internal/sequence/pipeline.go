package sequence

import (
	"errors"
	"fmt"
	"os"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

const (
	pipelineLoadErrorTemplateConstant        = "failed to load pipeline definition: %w"
	pipelineParseErrorTemplateConstant       = "failed to parse pipeline definition: %w"
	pipelinePathRequiredMessageConstant      = "pipeline definition path must be provided"
	pipelineEmptyStepsMessageConstant        = "pipeline definition must declare at least one step"
	pipelineUnknownOperationTemplateConstant = "pipeline step %d references unknown operation %q"
	pipelineDuplicateOperationTemplate       = "pipeline declares operation %q more than once"
	pipelineOptionsDecodeErrorTemplate       = "invalid options for pipeline operation %q: %w"
)

// OperationType identifies supported pipeline operations.
type OperationType string

// Supported pipeline operations.
const (
	OperationTypeFormat     OperationType = OperationType("format")
	OperationTypeStyleCheck OperationType = OperationType("check")
	OperationTypeStrictLint OperationType = OperationType("lint")
)

// PipelineDefinition describes the ordered quality steps loaded from YAML.
type PipelineDefinition struct {
	Steps []StepDefinition `yaml:"steps"`
}

// StepDefinition associates an operation type with declarative options.
type StepDefinition struct {
	Operation OperationType  `yaml:"operation"`
	Options   map[string]any `yaml:"with"`
}

// StyleCheckStepOptions captures the declarative options of a check step.
type StyleCheckStepOptions struct {
	ApplyFixes bool `mapstructure:"fix"`
}

var knownOperations = map[OperationType]struct{}{
	OperationTypeFormat:     {},
	OperationTypeStyleCheck: {},
	OperationTypeStrictLint: {},
}

// DefaultPipelineDefinition returns the fixed format, check, lint ordering.
func DefaultPipelineDefinition() PipelineDefinition {
	return PipelineDefinition{
		Steps: []StepDefinition{
			{Operation: OperationTypeFormat},
			{Operation: OperationTypeStyleCheck, Options: map[string]any{"fix": true}},
			{Operation: OperationTypeStrictLint},
		},
	}
}

// LoadPipelineDefinition reads a pipeline definition from disk and validates
// that every step names a known operation exactly once.
func LoadPipelineDefinition(filePath string) (PipelineDefinition, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return PipelineDefinition{}, errors.New(pipelinePathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return PipelineDefinition{}, fmt.Errorf(pipelineLoadErrorTemplateConstant, readError)
	}

	var definition PipelineDefinition
	if unmarshalError := yaml.Unmarshal(contentBytes, &definition); unmarshalError != nil {
		var wrapper struct {
			Pipeline PipelineDefinition `yaml:"pipeline"`
		}
		if nestedError := yaml.Unmarshal(contentBytes, &wrapper); nestedError != nil || len(wrapper.Pipeline.Steps) == 0 {
			return PipelineDefinition{}, fmt.Errorf(pipelineParseErrorTemplateConstant, unmarshalError)
		}
		definition = wrapper.Pipeline
	} else if len(definition.Steps) == 0 {
		var wrapper struct {
			Pipeline PipelineDefinition `yaml:"pipeline"`
		}
		if nestedError := yaml.Unmarshal(contentBytes, &wrapper); nestedError == nil {
			definition = wrapper.Pipeline
		}
	}

	if validationError := definition.validate(); validationError != nil {
		return PipelineDefinition{}, validationError
	}

	return definition, nil
}

// StyleCheckOptions decodes the options of the first check step, falling back
// to autofix enabled when the step carries no options.
func (definition PipelineDefinition) StyleCheckOptions() (StyleCheckStepOptions, error) {
	for _, step := range definition.Steps {
		if step.Operation != OperationTypeStyleCheck {
			continue
		}
		if len(step.Options) == 0 {
			return StyleCheckStepOptions{ApplyFixes: true}, nil
		}

		options := StyleCheckStepOptions{ApplyFixes: true}
		if decodeError := mapstructure.Decode(step.Options, &options); decodeError != nil {
			return StyleCheckStepOptions{}, fmt.Errorf(pipelineOptionsDecodeErrorTemplate, step.Operation, decodeError)
		}
		return options, nil
	}
	return StyleCheckStepOptions{ApplyFixes: true}, nil
}

// Operations returns the ordered operation names.
func (definition PipelineDefinition) Operations() []OperationType {
	operations := make([]OperationType, 0, len(definition.Steps))
	for _, step := range definition.Steps {
		operations = append(operations, step.Operation)
	}
	return operations
}

func (definition PipelineDefinition) validate() error {
	if len(definition.Steps) == 0 {
		return errors.New(pipelineEmptyStepsMessageConstant)
	}

	seen := make(map[OperationType]struct{}, len(definition.Steps))
	for stepIndex, step := range definition.Steps {
		operation := OperationType(strings.TrimSpace(string(step.Operation)))
		if _, known := knownOperations[operation]; !known {
			return fmt.Errorf(pipelineUnknownOperationTemplateConstant, stepIndex, string(step.Operation))
		}
		if _, duplicate := seen[operation]; duplicate {
			return fmt.Errorf(pipelineDuplicateOperationTemplate, string(operation))
		}
		seen[operation] = struct{}{}
	}

	return nil
}
