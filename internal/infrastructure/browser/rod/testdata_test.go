package rod

const (
	basicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	formHTML = `<!DOCTYPE html>
<html>
<body>
	<form id="couponForm" onsubmit="return false">
		<input id="coupon" type="text" name="coupon" />
		<button id="apply" type="button">Apply</button>
	</form>
	<div id="message"></div>
	<script>
		document.getElementById('apply').addEventListener('click', function() {
			var code = document.getElementById('coupon').value;
			document.getElementById('message').textContent = 'Coupon ' + code + ' applied';
		});
	</script>
</body>
</html>`
)
