package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/interviewprep/internal/scoring"
)

func mustResponse(t *testing.T, question string, confidence, score int) Response {
	t.Helper()
	r, err := NewResponse(question, "answer", confidence, scoring.Result{MLScore: score, KeywordScore: score, Score: score})
	require.NoError(t, err)
	return r
}

func TestNewResponse_Confidence(t *testing.T) {
	tests := []struct {
		confidence int
		wantErr    bool
	}{
		{0, true},
		{1, false},
		{3, false},
		{5, false},
		{6, true},
		{-2, true},
	}
	for _, tt := range tests {
		_, err := NewResponse("Q", "A", tt.confidence, scoring.Result{})
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidConfidence, "confidence %d", tt.confidence)
		} else {
			assert.NoError(t, err, "confidence %d", tt.confidence)
		}
	}
}

func TestNewResponse_CopiesScores(t *testing.T) {
	r, err := NewResponse("Q", "A", 4, scoring.Result{MLScore: 3, KeywordScore: 2, Score: 3})
	require.NoError(t, err)
	assert.Equal(t, "Q", r.Question)
	assert.Equal(t, "A", r.Answer)
	assert.Equal(t, 4, r.Confidence)
	assert.Equal(t, 3, r.MLScore)
	assert.Equal(t, 2, r.KeywordScore)
	assert.Equal(t, 3, r.Score)
	assert.False(t, r.SubmittedAt.IsZero())
}

func TestLog_AppendGrowsByOne(t *testing.T) {
	l := NewLog()
	assert.Equal(t, 0, l.Len())
	assert.NotEmpty(t, l.ID())
	assert.False(t, l.StartedAt().IsZero())

	_, ok := l.Last()
	assert.False(t, ok)

	for i := 1; i <= 3; i++ {
		l.Append(mustResponse(t, "Q", i, i))
		assert.Equal(t, i, l.Len())
	}

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last.Confidence)
}

func TestLog_AllPreservesOrderAndCopies(t *testing.T) {
	l := NewLog()
	l.Append(mustResponse(t, "first", 1, 0))
	l.Append(mustResponse(t, "second", 2, 1))

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Question)
	assert.Equal(t, "second", all[1].Question)

	all[0].Question = "mutated"
	assert.Equal(t, "first", l.All()[0].Question)
}

func TestLog_DistinctIDs(t *testing.T) {
	assert.NotEqual(t, NewLog().ID(), NewLog().ID())
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]Response{
		mustResponse(t, "Q", 5, 4),
		mustResponse(t, "Q", 2, 1),
		mustResponse(t, "Q", 2, 1),
	})
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 2.0, s.AvgScore, 1e-9)
	assert.InDelta(t, 3.0, s.AvgConfidence, 1e-9)
	assert.Equal(t, 2, s.LowScores)
}

func TestResponse_Feedback(t *testing.T) {
	assert.NotEmpty(t, mustResponse(t, "Q", 3, 1).Feedback())
	assert.Empty(t, mustResponse(t, "Q", 3, 2).Feedback())
}
