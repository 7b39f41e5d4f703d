// Package resource implements counted budgets for kernel resources.
//
// A Budget caps a quantity such as live descriptors or mapped bytes.
// Reservations use a weighted semaphore for the hard limit and an atomic
// counter for usage tracking:
//
//	b := resource.NewBudget(1024)
//	if !b.TryAcquire(1) {
//	    return errno.FromCode(int(unix.EMFILE))
//	}
//	defer b.Release(1)
//
// A nil *Budget, or one created with a limit of zero, only tracks usage.
package resource
