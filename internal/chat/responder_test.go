package chat_test

import (
	"strings"
	"testing"

	"github.com/medroute/hospital-finder/internal/chat"
	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		message string
		want    chat.Intent
	}{
		{"hello there", chat.IntentGreeting},
		{"good morning", chat.IntentGreeting},
		{"thank you so much", chat.IntentThanks},
		{"i have a fever and a cough", chat.IntentSymptom},
		{"where is the nearest clinic", chat.IntentLocation},
		{"tell me about apollo hospital", chat.IntentHospitalInfo},
		{"what should i do about my rash", chat.IntentMedicalAdvice},
		{"asdf qwerty", chat.IntentUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, chat.DetectIntent(tc.message))
		})
	}
}

func TestDetectIntent_EmergencyWinsOverEverything(t *testing.T) {
	cases := []string{
		"hello, my father had a heart attack",
		"i have severe stomach pain",
		"there was an accident near my house",
		"thank you but he is still unconscious",
	}

	for _, message := range cases {
		assert.Equal(t, chat.IntentEmergency, chat.DetectIntent(message), "message: %q", message)
	}
}

func TestRespond_ReturnsNonEmptyReply(t *testing.T) {
	responder := chat.NewResponder(1)

	for _, message := range []string{"hello", "i have a cough", "thanks", "gibberish input"} {
		assert.NotEmpty(t, responder.Respond(message), "message: %q", message)
	}
}

func TestRespond_InterpolatesSymptoms(t *testing.T) {
	responder := chat.NewResponder(1)

	// Every symptom template either names the symptoms or has no
	// placeholder at all; the raw placeholder must never leak.
	for i := 0; i < 20; i++ {
		response := responder.Respond("i have a cough and a fever")
		assert.NotContains(t, response, "{symptoms}")
	}
}

func TestRespond_EmergencyMentionsEmergencyNumber(t *testing.T) {
	responder := chat.NewResponder(1)

	for i := 0; i < 20; i++ {
		response := responder.Respond("he is bleeding heavily")
		assert.Contains(t, response, "108")
	}
}

func TestRespond_NormalizesCase(t *testing.T) {
	responder := chat.NewResponder(1)

	response := responder.Respond("  HELLO  ")

	var matched bool
	for _, candidate := range []string{"Hello!", "Hi!", "Welcome!"} {
		if strings.HasPrefix(response, candidate) {
			matched = true
		}
	}
	assert.True(t, matched, "unexpected greeting response: %q", response)
}

func TestRespond_DeterministicWithFixedSeed(t *testing.T) {
	a := chat.NewResponder(42)
	b := chat.NewResponder(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Respond("hello"), b.Respond("hello"))
	}
}
