// Package mouseapi exposes the simulator-facing turn endpoint.
package mouseapi

// TurnRequest is one turn's report from the maze simulator.
type TurnRequest struct {
	GameID      string `json:"game_id"`
	SensorData  []int  `json:"sensor_data"` // 5 proximity flags, ordered -90°..+90°
	Momentum    int    `json:"momentum"`
	IsCrashed   bool   `json:"is_crashed"`
	GoalReached bool   `json:"goal_reached"`
	Run         int    `json:"run"`
	TotalTimeMs int64  `json:"total_time_ms"`
}

// TurnResponse carries the instruction batch back to the simulator.
// Instructions is non-empty unless the run is terminal; End is only set
// when this side considers the run over.
type TurnResponse struct {
	Instructions []string `json:"instructions"`
	End          bool     `json:"end"`
}
