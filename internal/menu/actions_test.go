package menu

import "testing"

func TestAddActionPromptsDialog(t *testing.T) {
	reg := seedRegistry(t)
	loans, _ := reg.Find("loans")
	msg := AddAction(loans)(Context{Section: "loans"}, Item{})()
	prompt, ok := msg.(DraftPrompt)
	if !ok {
		t.Fatalf("expected DraftPrompt, got %T", msg)
	}
	if prompt.Kind != DraftAdd || prompt.Spec.Title != "Create New Loan" || prompt.Context.Section != "loans" {
		t.Fatalf("unexpected prompt %+v", prompt)
	}
}

func TestAddActionWithoutDialog(t *testing.T) {
	reg := seedRegistry(t)
	charts, _ := reg.Find("charts")
	msg := AddAction(charts)(Context{Section: "charts"}, Item{})()
	res, ok := msg.(ActionResult)
	if !ok || res.Err == nil || res.Err.Error() != "Charts has no add dialog" {
		t.Fatalf("unexpected result %#v", msg)
	}
}

func TestEditActionPrefills(t *testing.T) {
	reg := seedRegistry(t)
	borrowers, _ := reg.Find("borrowers")
	msg := EditAction(borrowers)(Context{Section: "borrowers"}, Item{ID: "B002"})()
	prompt, ok := msg.(DraftPrompt)
	if !ok {
		t.Fatalf("expected DraftPrompt, got %T", msg)
	}
	if prompt.Kind != DraftEdit || prompt.Spec.Target != "B002" {
		t.Fatalf("unexpected prompt %+v", prompt)
	}

	loans, _ := reg.Find("loans")
	res, ok := EditAction(loans)(Context{Section: "loans"}, Item{ID: "L001"})().(ActionResult)
	if !ok || res.Err == nil {
		t.Fatalf("loans have no edit dialog, got %#v", res)
	}
}
