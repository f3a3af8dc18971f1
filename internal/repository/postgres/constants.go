package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errUserNotFound    = "user not found"
	errAthleteNotFound = "athlete not found"
	errAPIKeyNotFound  = "API key not found"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"

	errFailedCreateUserFmt = "failed to create user: %w"
	errFailedGetUserFmt    = "failed to get user: %w"

	errFailedCreateAthleteFmt  = "failed to create athlete: %w"
	errFailedGetAthleteFmt     = "failed to get athlete: %w"
	errFailedListAthletesFmt   = "failed to list athletes: %w"
	errFailedScanAthleteFmt    = "failed to scan athlete: %w"
	errIterateAthletesFmt      = "error iterating athletes: %w"
	errFailedUpdateAthleteFmt  = "failed to update athlete: %w"
	errFailedDeleteAthleteFmt  = "failed to delete athlete: %w"
	errFailedCreateAPIKeyFmt   = "failed to create API key: %w"
	errFailedGetAPIKeyFmt      = "failed to get API key: %w"
	errFailedRevokeAPIKeyFmt   = "failed to deactivate API key: %w"
)

var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedCreateUser           = func(err error) error { return fmt.Errorf(errFailedCreateUserFmt, err) }
	errFailedGetUser              = func(err error) error { return fmt.Errorf(errFailedGetUserFmt, err) }
	errFailedCreateAthlete        = func(err error) error { return fmt.Errorf(errFailedCreateAthleteFmt, err) }
	errFailedGetAthlete           = func(err error) error { return fmt.Errorf(errFailedGetAthleteFmt, err) }
	errFailedListAthletes         = func(err error) error { return fmt.Errorf(errFailedListAthletesFmt, err) }
	errFailedScanAthlete          = func(err error) error { return fmt.Errorf(errFailedScanAthleteFmt, err) }
	errIterateAthletes            = func(err error) error { return fmt.Errorf(errIterateAthletesFmt, err) }
	errFailedUpdateAthlete        = func(err error) error { return fmt.Errorf(errFailedUpdateAthleteFmt, err) }
	errFailedDeleteAthlete        = func(err error) error { return fmt.Errorf(errFailedDeleteAthleteFmt, err) }
	errFailedCreateAPIKey         = func(err error) error { return fmt.Errorf(errFailedCreateAPIKeyFmt, err) }
	errFailedGetAPIKey            = func(err error) error { return fmt.Errorf(errFailedGetAPIKeyFmt, err) }
	errFailedRevokeAPIKey         = func(err error) error { return fmt.Errorf(errFailedRevokeAPIKeyFmt, err) }
)
