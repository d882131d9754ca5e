package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailgate/storefront-api/auth"
)

func TestBrokerPublishIsSynchronous(t *testing.T) {
	b := auth.NewBroker()

	var seen []string
	b.Subscribe(func(uid string, signedIn bool) {
		seen = append(seen, uid)
	})

	b.Publish("u1", false)
	// The transition is fully observed before Publish returns.
	assert.Equal(t, []string{"u1"}, seen)
}

func TestBrokerFansOutInSubscriptionOrder(t *testing.T) {
	b := auth.NewBroker()

	var order []int
	b.Subscribe(func(uid string, signedIn bool) { order = append(order, 1) })
	b.Subscribe(func(uid string, signedIn bool) { order = append(order, 2) })

	b.Publish("u1", true)
	assert.Equal(t, []int{1, 2}, order)
}
