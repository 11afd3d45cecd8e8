// Package pipeline holds the build pipeline components that consume and
// produce notifications: a lazy solution accessor, the release announcer,
// and the repository info producer.
package pipeline
