package shell

// Page is one menu entry.
type Page struct {
	Title string
	Model any
}

// ShellViewModel holds the menu and the status line.
type ShellViewModel struct {
	Pages    []Page
	Selected int
	Status   string
}

// NewShellViewModel creates a shell over pages.
func NewShellViewModel(pages ...Page) *ShellViewModel {
	return &ShellViewModel{Pages: pages}
}

// Move shifts the selection by delta, wrapping around.
func (vm *ShellViewModel) Move(delta int) {
	n := len(vm.Pages)
	if n == 0 {
		return
	}
	vm.Selected = ((vm.Selected+delta)%n + n) % n
}

// Current returns the selected page, or nil without pages.
func (vm *ShellViewModel) Current() *Page {
	if len(vm.Pages) == 0 {
		return nil
	}
	return &vm.Pages[vm.Selected]
}

// Fail records a failed navigation.
func (vm *ShellViewModel) Fail(err error) { vm.Status = err.Error() }

// Clear resets the status line.
func (vm *ShellViewModel) Clear() { vm.Status = "" }
