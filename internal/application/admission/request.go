package admission

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexBool accepts the boolean encodings seen in submission payloads:
// JSON booleans, numbers (zero is false), numeric strings, and
// "TRUE"/"FALSE" in any case. Anything else is a validation error.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case bool:
		*b = FlexBool(value)
	case float64:
		*b = value != 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			*b = n != 0
			return nil
		}
		switch strings.ToUpper(strings.TrimSpace(value)) {
		case "TRUE":
			*b = true
		case "FALSE":
			*b = false
		default:
			return fmt.Errorf("invalid boolean value %q", value)
		}
	default:
		return fmt.Errorf("invalid boolean value %v", v)
	}
	return nil
}

// FlexInt accepts integers that may arrive as JSON numbers or strings;
// an empty string means zero.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*i = FlexInt(value)
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			*i = 0
			return nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return fmt.Errorf("invalid integer value %q", value)
		}
		*i = FlexInt(n)
	default:
		return fmt.Errorf("invalid integer value %v", v)
	}
	return nil
}

// SubmitRequest is a job submission. Optional fields are pointers so
// "absent" is distinguishable from a zero value.
type SubmitRequest struct {
	JobName  string  `json:"jobName"`
	VcName   string  `json:"vcName"`
	UserName string  `json:"userName"`
	UserID   *string `json:"userId,omitempty"`

	JobID       *string `json:"jobId,omitempty"`
	FamilyToken *string `json:"familyToken,omitempty"`
	IsParent    *FlexBool `json:"isParent,omitempty"`

	JobPath  *string `json:"jobPath,omitempty"`
	WorkPath *string `json:"workPath,omitempty"`
	DataPath *string `json:"dataPath,omitempty"`
	LogDir   *string `json:"logDir,omitempty"`

	JobType         string  `json:"jobType,omitempty"`
	JobTrainingType string  `json:"jobtrainingtype,omitempty"`
	Image           string  `json:"image"`
	Cmd             *string `json:"cmd,omitempty"`

	ResourceGPU       *FlexInt  `json:"resourcegpu,omitempty"`
	NumPSWorker       *FlexInt  `json:"numpsworker,omitempty"`
	GpuType           string    `json:"gpuType,omitempty"`
	PreemptionAllowed *FlexBool `json:"preemptionAllowed,omitempty"`
	JobPriority       *FlexInt  `json:"jobPriority,omitempty"`
}
