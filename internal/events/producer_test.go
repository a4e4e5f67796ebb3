package events

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busline/internal/logger"
)

func TestTopicMapping(t *testing.T) {
	assert.Equal(t, "bookings.created", Topic(TypeBookingCreated))
	assert.Equal(t, "bookings.cancelled", Topic(TypeBookingCancelled))
	assert.Equal(t, "bookings.status", Topic(TypeStatusChanged))
	assert.Equal(t, "bookings.created", Topic("something-else"))
}

func TestMockModePublish(t *testing.T) {
	p, err := NewProducer(nil, logger.New(false))
	require.NoError(t, err)
	defer p.Close()

	err = p.Publish(BookingEvent{
		Type:       TypeBookingCreated,
		BookingID:  42,
		Reference:  "ref-test",
		RouteID:    3,
		UserID:     7,
		Seats:      []int{12, 13},
		Status:     "pending",
		OccurredAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
}

func TestPublishSendsKeyedMessage(t *testing.T) {
	mp := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	mp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		assert.Contains(t, string(val), `"reference":"ref-test"`)
		return nil
	})

	p := &Producer{producer: mp, log: logger.New(false)}
	err := p.Publish(BookingEvent{
		Type:      TypeBookingCancelled,
		Reference: "ref-test",
		Status:    "cancelled",
	})
	require.NoError(t, err)
	require.NoError(t, mp.Close())
}

func TestPublishFailureIsReturned(t *testing.T) {
	mp := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := &Producer{producer: mp, log: logger.New(false)}
	err := p.Publish(BookingEvent{Type: TypeBookingCreated, Reference: "ref-test"})
	assert.Error(t, err)
	require.NoError(t, mp.Close())
}
