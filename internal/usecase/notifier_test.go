package usecase

import (
	"context"
	"testing"

	"flightmate-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_MessagesEachMatchedUserOnce(t *testing.T) {
	ctx := context.Background()
	me := testUser("Me", "U_ME")
	// Alice matches exactly and by overlap via two different flights
	alice := testUser("Alice", "U_ALICE")
	bob := testUser("Bob", "U_BOB")

	repo := newFakeFlightRepo()
	flight := testFlight(t, me.ID, "UA100", "2025-08-10", "10:00", "IAH", 2)
	stored, err := repo.Insert(ctx, &flight)
	require.NoError(t, err)

	repo.pool = poolOf(
		owned(alice, testFlight(t, alice.ID, "UA100", "2025-08-10", "10:00", "IAH", 2)),
		owned(alice, testFlight(t, alice.ID, "DL200", "2025-08-10", "09:00", "IAH", 1)),
		owned(bob, testFlight(t, bob.ID, "AA300", "2025-08-10", "09:30", "IAH", 1)),
	)

	log := &fakeNotificationLog{}
	messenger := &fakeMessenger{}
	n := NewNotifier(repo, log, messenger, logger.NewNop(), testMetrics)

	n.NotifyMatches(ctx, stored, &me)

	assert.ElementsMatch(t, []string{"U_ALICE", "U_BOB"}, messenger.sent)
	assert.Len(t, log.records, 2)
}

func TestNotifier_SkipsRecipientsAlreadyOnRecord(t *testing.T) {
	ctx := context.Background()
	me := testUser("Me", "U_ME")
	alice := testUser("Alice", "U_ALICE")

	repo := newFakeFlightRepo()
	flight := testFlight(t, me.ID, "UA100", "2025-08-10", "10:00", "IAH", 2)
	stored, err := repo.Insert(ctx, &flight)
	require.NoError(t, err)

	repo.pool = poolOf(
		owned(alice, testFlight(t, alice.ID, "UA100", "2025-08-10", "10:00", "IAH", 2)),
	)

	log := &fakeNotificationLog{}
	messenger := &fakeMessenger{}
	n := NewNotifier(repo, log, messenger, logger.NewNop(), testMetrics)

	n.NotifyMatches(ctx, stored, &me)
	n.NotifyMatches(ctx, stored, &me)

	assert.Equal(t, []string{"U_ALICE"}, messenger.sent)
	assert.Len(t, log.records, 1)
}

func TestNotifier_DeliveryFailureLeavesNoRecord(t *testing.T) {
	ctx := context.Background()
	me := testUser("Me", "U_ME")
	alice := testUser("Alice", "U_ALICE")

	repo := newFakeFlightRepo()
	flight := testFlight(t, me.ID, "UA100", "2025-08-10", "10:00", "IAH", 2)
	stored, err := repo.Insert(ctx, &flight)
	require.NoError(t, err)

	repo.pool = poolOf(
		owned(alice, testFlight(t, alice.ID, "UA100", "2025-08-10", "10:00", "IAH", 2)),
	)

	log := &fakeNotificationLog{}
	messenger := &fakeMessenger{sendErr: assert.AnError}
	n := NewNotifier(repo, log, messenger, logger.NewNop(), testMetrics)

	n.NotifyMatches(ctx, stored, &me)

	assert.Empty(t, log.records)

	// the failed recipient is retried on the next run
	messenger.sendErr = nil
	n.NotifyMatches(ctx, stored, &me)
	assert.Equal(t, []string{"U_ALICE"}, messenger.sent)
}
