package engine_test

import (
	"github.com/openstay/stayagent/errors"
)

func (s *EngineTestSuite) TestExtractSearchParams() {
	caller := &scriptedCaller{steps: []scriptStep{
		{resp: s.textMessage("Here you go:\n```json\n{\"location\": \"Paris, France\", \"checkin\": \"2026-09-01\", \"checkout\": \"2026-09-05\", \"adults\": 2}\n```")},
	}}
	eng := s.newEngine(caller, &fakeManager{})

	params, err := eng.ExtractSearchParams(s, "A week in Paris for two in early September")
	s.Require().NoError(err)

	s.Equal("Paris, France", params.Location)
	s.Equal("2026-09-01", params.CheckIn)
	s.Equal("2026-09-05", params.CheckOut)
	s.Equal(2, params.Adults)

	// extraction runs without tool schemas
	s.Require().Len(caller.params, 1)
	s.Empty(caller.params[0].Tools)
}

func (s *EngineTestSuite) TestExtractSearchParamsDefaultsAdults() {
	caller := &scriptedCaller{steps: []scriptStep{
		{resp: s.textMessage(`{"location": "Kyoto, Japan"}`)},
	}}
	eng := s.newEngine(caller, &fakeManager{})

	params, err := eng.ExtractSearchParams(s, "Somewhere quiet in Kyoto")
	s.Require().NoError(err)

	s.Equal("Kyoto, Japan", params.Location)
	s.Equal(1, params.Adults)
	s.Empty(params.CheckIn)
	s.Empty(params.CheckOut)
}

func (s *EngineTestSuite) TestExtractSearchParamsNoLocation() {
	caller := &scriptedCaller{steps: []scriptStep{
		{resp: s.textMessage(`{"adults": 2}`)},
	}}
	eng := s.newEngine(caller, &fakeManager{})

	_, err := eng.ExtractSearchParams(s, "Somewhere nice for two")
	s.Require().ErrorIs(err, errors.ErrInvalidToolArgs)
}

func (s *EngineTestSuite) TestExtractSearchParamsNoJSON() {
	caller := &scriptedCaller{steps: []scriptStep{
		{resp: s.textMessage("I could not find any search parameters in that.")},
	}}
	eng := s.newEngine(caller, &fakeManager{})

	_, err := eng.ExtractSearchParams(s, "hmm")
	s.Require().ErrorIs(err, errors.ErrInvalidToolArgs)
}

func (s *EngineTestSuite) TestExtractSearchParamsEmptyQuery() {
	eng := s.newEngine(&scriptedCaller{}, &fakeManager{})

	_, err := eng.ExtractSearchParams(s, "")
	s.Require().ErrorIs(err, errors.ErrInvalidParams)
}
