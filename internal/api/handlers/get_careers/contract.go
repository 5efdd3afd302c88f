package get_careers

import "github.com/m04kA/LifeCare-BookingService/internal/service/careers/models"

type CareersService interface {
	Positions() []models.PositionResponse
	Openings() []models.JobOpeningResponse
}
