package internal

import "time"

const (
	// client behavior
	CollectorTimeout         = 20 * time.Second
	BatchPeriod              = 2 * time.Second
	MessageChanSize          = 200
	FailedBatchAttemptsLimit = 5

	// batch data
	MaxBatchMessages   = 50
	MaxPendingMessages = 1000

	// message fields
	TitleLengthLimit  = 512
	DetailLengthLimit = 32 * 1024
	MaxDataItems      = 64
)
