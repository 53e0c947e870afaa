package config

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config/document"
	"github.com/godwm/godwm/internal/input/bind"
)

// ruleString reads one window-matching criterion, normalizing the
// case-insensitive "null" sentinel to MatchAny.
func ruleString(sec getter, path string, dst *string) error {
	var raw string
	if err := lookupString(sec, path, &raw, false); err != nil {
		return err
	}
	if strings.EqualFold(raw, "null") {
		*dst = MatchAny
		return nil
	}
	*dst = raw
	return nil
}

// parseRules parses the "rules" list. Each of a rule's six fields is
// looked up independently: one bad field costs one failure but the
// rule still captures its other fields.
func parseRules(doc *document.Document, cfg *Config) int {
	list, ok := doc.List("rules")
	if !ok {
		log.Error("problem reading config value \"rules\": not found")
		return 1
	}

	if list.Len() == 0 {
		log.Warn("no rules listed, exiting rules parsing")
		return 1
	}

	log.Debug("rules detected", "count", list.Len())

	failedRules := 0
	failedFields := 0
	rules := make([]Rule, 0, list.Len())

	for i := 0; i < list.Len(); i++ {
		sec, ok := list.Table(i)
		if !ok {
			log.Error("rule element is not a table, unable to parse", "index", i+1)
			failedRules++
			continue
		}

		var rule Rule
		if err := ruleString(sec, "class", &rule.Class); err != nil {
			log.Error("problem parsing rule value", "field", "class", "rule", i+1)
			failedFields++
		}
		if err := ruleString(sec, "instance", &rule.Instance); err != nil {
			log.Error("problem parsing rule value", "field", "instance", "rule", i+1)
			failedFields++
		}
		if err := ruleString(sec, "title", &rule.Title); err != nil {
			log.Error("problem parsing rule value", "field", "title", "rule", i+1)
			failedFields++
		}

		if err := lookupUint(sec, "tag-mask", &rule.Tags, false, 0, bind.TagMask); err != nil {
			failedFields++
		}
		if err := lookupInt(sec, "monitor", &rule.Monitor, false, -1, 99); err != nil {
			failedFields++
		}
		if err := lookupBool(sec, "floating", &rule.IsFloating, false); err != nil {
			failedFields++
		}

		rules = append(rules, rule)
	}

	log.Debug("rules parsed", "failed_rules", failedRules, "failed_fields", failedFields)

	cfg.Rules = rules
	return failedRules + failedFields
}
