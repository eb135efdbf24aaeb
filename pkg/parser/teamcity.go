package parser

import "regexp"

// TeamCity service messages.
// https://www.jetbrains.com/help/teamcity/service-messages.html
var (
	tcBlockPattern = regexp.MustCompile(`##teamcity\[blockOpened name='([^']*)'`)
	tcErrorPattern = regexp.MustCompile(`##teamcity\[message text='([^']*)'[^\]]*status='ERROR'`)
)

// parseTeamCity recognizes blockOpened boundaries and ERROR service
// messages. Captured names and messages are kept verbatim. Errors are
// recorded globally only; a TeamCity step is never flipped to failed,
// unlike the Jenkins and generic strategies.
func parseTeamCity(lines []string, acc *accumulator) {
	for _, line := range lines {
		if m := tcBlockPattern.FindStringSubmatch(line); m != nil {
			acc.steps = append(acc.steps, BuildStep{
				Name:   m[1],
				Status: StepStatusSuccess,
			})
		}

		if m := tcErrorPattern.FindStringSubmatch(line); m != nil {
			acc.errors = append(acc.errors, m[1])
		}
	}
}
