package athlete

import (
	"athlete-service/pkg/validator"
)

// Athlete mirrors the donne_sport measurement table.
type Athlete struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Gender            string  `json:"gender"`
	Runtime           float64 `json:"runtime"`
	Age               int     `json:"age"`
	Weight            float64 `json:"weight"`
	OxygenConsumption float64 `json:"oxygen_consumption"`
	RunPulse          int     `json:"run_pulse"`
	RestPulse         int     `json:"rest_pulse"`
	MaxPulse          int     `json:"max_pulse"`
	Performance       int     `json:"performance"`
}

type CreateInput struct {
	Name              string  `json:"name"`
	Gender            string  `json:"gender"`
	Runtime           float64 `json:"runtime"`
	Age               int     `json:"age"`
	Weight            float64 `json:"weight"`
	OxygenConsumption float64 `json:"oxygen_consumption"`
	RunPulse          int     `json:"run_pulse"`
	RestPulse         int     `json:"rest_pulse"`
	MaxPulse          int     `json:"max_pulse"`
	Performance       int     `json:"performance"`
}

func (in *CreateInput) Validate() error {
	if err := validator.AthleteName(in.Name); err != nil {
		return err
	}
	if err := validator.AthleteGender(in.Gender); err != nil {
		return err
	}
	if err := validator.AthleteAge(in.Age); err != nil {
		return err
	}
	if err := validator.PositiveMeasurement("runtime", in.Runtime); err != nil {
		return err
	}
	if err := validator.PositiveMeasurement("weight", in.Weight); err != nil {
		return err
	}
	if err := validator.PositiveMeasurement("oxygen_consumption", in.OxygenConsumption); err != nil {
		return err
	}
	if err := validator.PositiveMeasurement("run_pulse", float64(in.RunPulse)); err != nil {
		return err
	}
	if err := validator.PositiveMeasurement("rest_pulse", float64(in.RestPulse)); err != nil {
		return err
	}
	if err := validator.PositiveMeasurement("max_pulse", float64(in.MaxPulse)); err != nil {
		return err
	}
	return validator.AthletePerformance(in.Performance)
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	Name              *string  `json:"name"`
	Gender            *string  `json:"gender"`
	Runtime           *float64 `json:"runtime"`
	Age               *int     `json:"age"`
	Weight            *float64 `json:"weight"`
	OxygenConsumption *float64 `json:"oxygen_consumption"`
	RunPulse          *int     `json:"run_pulse"`
	RestPulse         *int     `json:"rest_pulse"`
	MaxPulse          *int     `json:"max_pulse"`
	Performance       *int     `json:"performance"`
}

func (in *UpdateInput) Validate() error {
	if in.Name != nil {
		if err := validator.AthleteName(*in.Name); err != nil {
			return err
		}
	}
	if in.Gender != nil {
		if err := validator.AthleteGender(*in.Gender); err != nil {
			return err
		}
	}
	if in.Age != nil {
		if err := validator.AthleteAge(*in.Age); err != nil {
			return err
		}
	}
	if in.Runtime != nil {
		if err := validator.PositiveMeasurement("runtime", *in.Runtime); err != nil {
			return err
		}
	}
	if in.Weight != nil {
		if err := validator.PositiveMeasurement("weight", *in.Weight); err != nil {
			return err
		}
	}
	if in.OxygenConsumption != nil {
		if err := validator.PositiveMeasurement("oxygen_consumption", *in.OxygenConsumption); err != nil {
			return err
		}
	}
	if in.RunPulse != nil {
		if err := validator.PositiveMeasurement("run_pulse", float64(*in.RunPulse)); err != nil {
			return err
		}
	}
	if in.RestPulse != nil {
		if err := validator.PositiveMeasurement("rest_pulse", float64(*in.RestPulse)); err != nil {
			return err
		}
	}
	if in.MaxPulse != nil {
		if err := validator.PositiveMeasurement("max_pulse", float64(*in.MaxPulse)); err != nil {
			return err
		}
	}
	if in.Performance != nil {
		return validator.AthletePerformance(*in.Performance)
	}
	return nil
}

// IsEmpty reports whether the update carries no fields at all.
func (in *UpdateInput) IsEmpty() bool {
	return in.Name == nil && in.Gender == nil && in.Runtime == nil &&
		in.Age == nil && in.Weight == nil && in.OxygenConsumption == nil &&
		in.RunPulse == nil && in.RestPulse == nil && in.MaxPulse == nil &&
		in.Performance == nil
}

// ListFilter narrows List results. Nil fields are ignored.
type ListFilter struct {
	Name        *string
	Gender      *string
	Age         *int
	Performance *int
	SortBy      string
	SortDesc    bool
}
