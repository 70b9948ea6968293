// Package services contains application services for the projectboard client:
// the logic behind each screen without any rendering. Services validate input
// before calling the API and leave user-facing wording to the CLI.
package services
