package command

import (
	"context"
	"encoding/json"
	"time"

	"shiftwave/internal/service/scheduler"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	logger           *zap.Logger
	schedulerService *scheduler.Service
}

func NewScheduleHandler(logger *zap.Logger, schedulerService *scheduler.Service) *ScheduleHandler {
	return &ScheduleHandler{
		logger:           logger,
		schedulerService: schedulerService,
	}
}

// Generate 以 CLI 觸發單一場館的週班表產生
func (handler *ScheduleHandler) Generate(cmd *cobra.Command, args []string) {
	venueHex, _ := cmd.Flags().GetString("venue")
	weekStartDate, _ := cmd.Flags().GetString("week-start")
	save, _ := cmd.Flags().GetBool("save")

	venueIdentifier, err := primitive.ObjectIDFromHex(venueHex)
	if err != nil {
		cmd.PrintErrln("invalid --venue:", err)
		return
	}

	contextValue, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := handler.schedulerService.GenerateWeek(contextValue, venueIdentifier, weekStartDate, save, false)
	if err != nil {
		cmd.PrintErrln("generate schedule failed:", err)
		return
	}

	output, marshalError := json.MarshalIndent(result, "", "  ")
	if marshalError != nil {
		cmd.PrintErrln("encode result failed:", marshalError)
		return
	}
	cmd.Println(string(output))
}
