package responses

import "seroter.com/orderconsole/model"

// ConsoleResponse wraps the state returned by the JSON console endpoint.
// Message carries the flash text.
type ConsoleResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Data    *model.State `json:"data,omitempty"`
}
