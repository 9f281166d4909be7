// Copyright 2025 Brew Search Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package corpus

import (
	"context"
	"log/slog"
	"time"
)

// backoff is the retry policy applied to remote embedding calls. The
// wait doubles after every failed attempt, starting from base.
type backoff struct {
	attempts int
	base     time.Duration
	logger   *slog.Logger
}

// run invokes fn until it succeeds or attempts are exhausted, returning
// the last error. Cancellation interrupts both the pending wait and the
// next attempt.
func (b backoff) run(ctx context.Context, fn func() error) error {
	if b.attempts <= 0 {
		return ErrInvalidMaxAttempts
	}
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	wait := b.base
	var lastErr error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = fn(); lastErr == nil {
			if attempt > 1 {
				logger.Debug("call recovered", "attempt", attempt)
			}
			return nil
		}
		if attempt == b.attempts {
			return lastErr
		}
		logger.Debug("call failed, backing off",
			"attempt", attempt, "of", b.attempts, "wait", wait, "err", lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
}
