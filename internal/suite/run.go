package suite

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kisstest/internal/domain"
)

// Run executes every registered unit once, in discovery order, without stopping
// at failures. It returns false, doing nothing, when no units are registered.
func (s *Suite) Run() bool {
	if len(s.units) == 0 {
		return false
	}

	log := s.log.With(zap.String("run_id", uuid.NewString()))
	log.Debug("Suite run started", zap.Int("units", len(s.units)))
	for _, o := range s.observers {
		o.RunStarted(len(s.units))
	}

	for _, u := range s.units {
		if s.opts.Mode == domain.ModeVerbose {
			s.reporter.TestStarted(u.Name())
		}

		passed := u.Run()
		if !passed {
			s.reporter.TestFailed(u.Name())
		}

		s.runCount++
		if passed {
			s.passCount++
		}

		for _, o := range s.observers {
			o.UnitFinished(u.LastResult())
		}
	}

	for _, o := range s.observers {
		o.RunFinished()
	}
	log.Info("Suite run finished", zap.Int("passed", s.passCount), zap.Int("run", s.runCount))
	return true
}
