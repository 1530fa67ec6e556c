package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-agenda/internal/cache"
	"github.com/BruksfildServices01/barber-agenda/internal/config"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	dbpkg "github.com/BruksfildServices01/barber-agenda/internal/db"
	waitlistdomain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/barber-agenda/internal/usecase/availability"
	ucClosure "github.com/BruksfildServices01/barber-agenda/internal/usecase/closure"
	ucSchedule "github.com/BruksfildServices01/barber-agenda/internal/usecase/schedule"
	ucWaitlist "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitlist"
)

// Jobs de manutenção, um shot por invocação (cron chama):
//
//	jobs -task=materialize    expande fechamentos recorrentes no horizonte
//	jobs -task=seed           garante DaySchedule para cada dia do horizonte
//	jobs -task=expire-offers  varre ofertas vencidas da fila de espera
func main() {

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	task := flag.String("task", "", "materialize | seed | expire-offers")
	flag.Parse()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	engineRepo := infraRepo.NewEngineGormRepository(db)
	waitlistRepo := infraRepo.NewWaitlistGormRepository(db)

	now := timezone.Now()
	today := dates.New(now.Year(), int(now.Month()), now.Day())
	horizon := dates.Range(today, cfg.HorizonDays)

	ctx := context.Background()

	switch *task {
	case "materialize":
		uc := ucClosure.NewMaterialize(engineRepo, engineRepo, log.Logger)
		n, err := uc.Execute(ctx, horizon)
		if err != nil {
			log.Fatal().Err(err).Msg("materialize failed")
		}
		log.Info().Int("inserted", n).Msg("materialize finished")

	case "seed":
		uc := ucSchedule.NewSeed(engineRepo, engineRepo, log.Logger)
		n, err := uc.Execute(ctx, horizon)
		if err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Int("seeded", n).Msg("seed finished")

	case "expire-offers":
		var offerLock waitlistdomain.OfferLock
		if cfg.RedisAddr != "" {
			offerLock = cache.NewRedisOfferLock(cfg.RedisAddr)
		} else {
			offerLock = cache.NoopOfferLock{}
		}

		resolve := ucAvailability.NewResolve(engineRepo, log.Logger)
		matcher := ucWaitlist.NewMatcher(
			waitlistRepo,
			resolve,
			offerLock,
			notify.NewLogNotifier(log.Logger),
			time.Duration(cfg.OfferTTLMinutes)*time.Minute,
			log.Logger,
		)

		uc := ucWaitlist.NewExpireOffers(
			waitlistRepo, offerLock, matcher, cfg.OfferRetryLimit, log.Logger,
		)
		n, err := uc.Execute(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("expire-offers failed")
		}
		log.Info().Int("expired", n).Msg("expire-offers finished")

	default:
		log.Fatal().Str("task", *task).Msg("unknown task, use materialize | seed | expire-offers")
	}
}
