package setup

import (
	"fmt"

	"github.com/dentc/officesetup/internal/domain/office"
)

// SmartAssistTab edits the automation items. The master flag gates whether
// the item list is editable; turning it off never clears per-item settings.
type SmartAssistTab struct {
	draft *Draft
}

// NewSmartAssistTab creates the SmartAssist editor over the draft.
func NewSmartAssistTab(draft *Draft) *SmartAssistTab {
	return &SmartAssistTab{draft: draft}
}

// SetMaster toggles the master flag. Item configuration is retained either
// way; the items are merely inert while the flag is off.
func (t *SmartAssistTab) SetMaster(enabled bool) {
	cfg := t.cloneConfig()
	cfg.Enabled = enabled
	t.draft.Apply(Patch{SmartAssist: &cfg})
}

// SetItemEnabled toggles one item. Refused while the master flag is off.
func (t *SmartAssistTab) SetItemEnabled(key string, enabled bool) error {
	return t.updateItem(key, func(item *office.SmartAssistItem) error {
		item.Enabled = enabled
		return nil
	})
}

// SetItemFrequency sets one item's cadence. Refused while the master flag
// is off.
func (t *SmartAssistTab) SetItemFrequency(key, frequency string) error {
	return t.updateItem(key, func(item *office.SmartAssistItem) error {
		item.Frequency = frequency
		return nil
	})
}

// SetIncludeBalance sets the balance-inclusion flag, which only the payment
// item carries.
func (t *SmartAssistTab) SetIncludeBalance(key string, include bool) error {
	if !office.ItemSupportsBalance(key) {
		return fmt.Errorf("item %q does not carry a balance flag", key)
	}
	return t.updateItem(key, func(item *office.SmartAssistItem) error {
		item.IncludeBalance = include
		return nil
	})
}

// SetTemplate selects the message template for the template-bearing items
// (the four consent items, medical history, HIPAA).
func (t *SmartAssistTab) SetTemplate(key, template string) error {
	if !office.ItemSupportsTemplate(key) {
		return fmt.Errorf("item %q does not carry a template", key)
	}
	return t.updateItem(key, func(item *office.SmartAssistItem) error {
		item.Template = template
		return nil
	})
}

// EnabledCount is the derived "N of 12 enabled" summary.
func (t *SmartAssistTab) EnabledCount() int {
	return t.draft.Value().SmartAssist.EnabledItemCount()
}

func (t *SmartAssistTab) updateItem(key string, fn func(*office.SmartAssistItem) error) error {
	cfg := t.cloneConfig()
	if !cfg.Enabled {
		return fmt.Errorf("SmartAssist is disabled for this office")
	}
	item, ok := cfg.Items[key]
	if !ok {
		return fmt.Errorf("unknown SmartAssist item %q", key)
	}
	if err := fn(&item); err != nil {
		return err
	}
	cfg.Items[key] = item
	t.draft.Apply(Patch{SmartAssist: &cfg})
	return nil
}

// cloneConfig copies the config map so the patch replaces the whole
// SmartAssist key without aliasing the draft's current map.
func (t *SmartAssistTab) cloneConfig() office.SmartAssistConfig {
	cur := t.draft.Value().SmartAssist
	cfg := office.SmartAssistConfig{Enabled: cur.Enabled}
	cfg.Items = make(map[string]office.SmartAssistItem, len(cur.Items))
	for k, v := range cur.Items {
		cfg.Items[k] = v
	}
	return cfg
}
