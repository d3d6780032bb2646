package events

const (
	OrderPaidEventName        = "order.paid"
	MissionAppliedEventName   = "mission.applied"
	MissionAcceptedEventName  = "mission.accepted"
	MissionStartedEventName   = "mission.started"
	MissionCompletedEventName = "mission.completed"
	UploadReviewedEventName   = "upload.reviewed"
)

type OrderPaidEvent struct {
	OrderID  uint64
	BuyerID  uint64
	SellerID uint64
	UploadID uint64
	Amount   float64
	Title    string
}

func (e OrderPaidEvent) Name() string { return OrderPaidEventName }

type MissionEvent struct {
	EventName   string
	MissionID   uint64
	Title       string
	ClientID    uint64
	ActorID     uint64
	RecipientID uint64
}

func (e MissionEvent) Name() string { return e.EventName }

type UploadReviewedEvent struct {
	UploadID uint64
	OwnerID  uint64
	Title    string
	Status   string
}

func (e UploadReviewedEvent) Name() string { return UploadReviewedEventName }
