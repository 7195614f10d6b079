// Package registration implements the self-service registration wizard.
//
// A Wizard tracks one visitor's progress through the six registration steps:
// category, subcategory, personal info, additional info, consent, and
// confirmation. The wizard owns the step cursor and the accumulated form
// data; completing it hands the collected data to the account and profile
// collaborators.
package registration
