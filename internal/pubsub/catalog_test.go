package pubsub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivahq/niva/internal/pubsub"
)

type greeting struct {
	Text string `json:"text"`
}

func TestCatalogRegister(t *testing.T) {
	c := pubsub.NewCatalog()
	event := pubsub.NewEvent[greeting]("demo.greeting.sent", "A greeting was sent")

	topic, err := pubsub.Describe(event, "demo", greeting{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hi"}`, topic.Example)

	require.NoError(t, c.Register(topic))
	require.NoError(t, c.Register(pubsub.Topic{Name: "alpha.started", Description: "first"}))

	got, ok := c.Get("demo.greeting.sent")
	require.True(t, ok)
	assert.Equal(t, "demo", got.Module)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha.started", list[0].Name)

	assert.ErrorIs(t, c.Register(topic), pubsub.ErrDuplicateTopic)
}

func TestCatalogRejectsBadTopics(t *testing.T) {
	c := pubsub.NewCatalog()
	for _, name := range []string{"", "single", "Upper.case", "trailing.", "1st.topic"} {
		err := c.Register(pubsub.Topic{Name: name, Description: "d"})
		assert.ErrorIs(t, err, pubsub.ErrInvalidTopic, "name %q", name)
	}
	assert.ErrorIs(t, c.Register(pubsub.Topic{Name: "a.b"}), pubsub.ErrInvalidTopic)
	assert.Empty(t, c.List())
}
