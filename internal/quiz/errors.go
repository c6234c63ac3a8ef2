package quiz

import "errors"

// ErrNoEligibleWord is returned by Draw when every corpus word for the
// requested language has already been voted on. It is an expected condition
// ("no word today"), not a failure.
var ErrNoEligibleWord = errors.New("no eligible word remains")

// ErrAlreadyVoted is returned by Submit when the word already has a vote.
// A vote is recorded at most once per word and never changed.
var ErrAlreadyVoted = errors.New("word already voted")
