// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// Jobs are cron-based using github.com/robfig/cron/v3 with a seconds field
// and run in the business time zone.
//
// # Available Jobs
//
// DayEndJob runs once per business day (default "0 0 21 * * *"). It groups the
// day's packed ST and Professional invoices into courier rows, warns about
// rows still missing a box count, counts unresolved receipt feedback and
// writes the dispatch sheet.
//
// # Usage
//
//	dayEnd := jobs.NewDayEndJob(boxesHandler, pendingHandler, sheetWriter, clock, loc, spec, logger)
//	jobManager := jobs.NewJobManager(dayEnd)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next scheduled run proceeds normally.
package jobs
