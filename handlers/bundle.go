package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Rooms     *RoomHandler
	Schedules *ScheduleHandler
	History   *HistoryHandler
}
