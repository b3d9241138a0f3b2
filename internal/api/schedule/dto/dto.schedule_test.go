// Package dto - Test validate tag của ScheduleCreateInput: time là slot tự do.
package dto

import (
	"testing"

	"metro_waste/internal/global"
)

func TestScheduleCreateInput_TimeIsFreeFormSlot(t *testing.T) {
	global.InitValidator()

	input := ScheduleCreateInput{
		CollectorId:      "665f1b2a9c8d4e001a000001",
		CenterId:         "665f1b2a9c8d4e001a000002",
		VehicleId:        "665f1b2a9c8d4e001a000003",
		Date:             "2026-08-15",
		Time:             "morning",
		SelectedRequests: []string{"665f1b2a9c8d4e001a000004"},
	}
	if err := global.Validate.Struct(input); err != nil {
		t.Errorf("slot tự do như \"morning\" phải hợp lệ: %v", err)
	}

	input.Time = ""
	if err := global.Validate.Struct(input); err == nil {
		t.Error("time rỗng phải bị reject (required)")
	}
}
